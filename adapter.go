package tabular

import (
	"io"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/tabular/converters/common"
	"github.com/Station-Manager/tabular/dataset"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
)

// ConverterFunc converts an extracted member value before it is rendered as
// cell text. It may return a string, another value to be rendered, or nil for
// the configured null text.
type ConverterFunc func(src any) (any, error)

// ComposeConverters chains multiple ConverterFunc instances left-to-right.
// If any converter returns an error it aborts.
// Nil output propagates immediately.
func ComposeConverters(fns ...ConverterFunc) ConverterFunc {
	return func(src any) (any, error) {
		cur := src
		for _, fn := range fns {
			out, err := fn(cur)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, nil
			}
			cur = out
		}
		return cur, nil
	}
}

// MapString returns a ConverterFunc applying f when src is a string; otherwise returns src unchanged.
func MapString(f func(string) string) ConverterFunc {
	return func(src any) (any, error) {
		if s, ok := src.(string); ok {
			return f(s), nil
		}
		return src, nil
	}
}

// DefaultTimeLayout is used to render time.Time and null.Time cells.
const DefaultTimeLayout = time.RFC3339

// Options control how an Adapter renders cells and discovers columns.
type Options struct {
	NullText             string       // text written for nil pointers and NULL values
	TimeLayout           string       // layout for time.Time and null.Time cells
	DedupColumns         bool         // when true, repeated discovered names are dropped from the column list
	ExpandAdditionalData bool         // when true, keys of an AdditionalData JSON object become columns
	Logger               *slog.Logger // receives Debug records for discovery and cell failures
}

// Option mutates Options during construction.
type Option func(*Options)

// WithNullText sets the text written for nil and NULL values.
func WithNullText(s string) Option { return func(o *Options) { o.NullText = s } }

// WithTimeLayout sets the layout used for time.Time and null.Time cells.
func WithTimeLayout(layout string) Option { return func(o *Options) { o.TimeLayout = layout } }

// WithDedupColumns drops repeated names from discovered column lists.
func WithDedupColumns(v bool) Option { return func(o *Options) { o.DedupColumns = v } }

// WithLogger routes Debug records to logger.
func WithLogger(logger *slog.Logger) Option { return func(o *Options) { o.Logger = logger } }

// WithExpandAdditionalData turns the keys of an AdditionalData JSON object into columns.
func WithExpandAdditionalData(v bool) Option {
	return func(o *Options) { o.ExpandAdditionalData = v }
}

// converterRegistry stores converters at multiple scopes and is swapped atomically (copy-on-write)
type converterRegistry struct {
	byField  map[string]ConverterFunc                        // field name, any source type
	bySource map[reflect.Type]map[string]ConverterFunc        // source type + field name
	byType   map[reflect.Type]ConverterFunc                   // value type, applied when rendering
}

func newConverterRegistry() *converterRegistry {
	return &converterRegistry{
		byField:  make(map[string]ConverterFunc),
		bySource: make(map[reflect.Type]map[string]ConverterFunc),
		byType:   make(map[reflect.Type]ConverterFunc),
	}
}

func (r *converterRegistry) clone() *converterRegistry {
	c := &converterRegistry{
		byField:  make(map[string]ConverterFunc, len(r.byField)+1),
		bySource: make(map[reflect.Type]map[string]ConverterFunc, len(r.bySource)+1),
		byType:   make(map[reflect.Type]ConverterFunc, len(r.byType)+1),
	}
	for k, v := range r.byField {
		c.byField[k] = v
	}
	for t, m := range r.bySource {
		sub := make(map[string]ConverterFunc, len(m))
		for k, v := range m {
			sub[k] = v
		}
		c.bySource[t] = sub
	}
	for t, v := range r.byType {
		c.byType[t] = v
	}
	return c
}

// fieldConverter returns the converter for a member, source type scope first.
func (r *converterRegistry) fieldConverter(srcType reflect.Type, field string) ConverterFunc {
	if fn := r.bySource[srcType][field]; fn != nil {
		return fn
	}
	return r.byField[field]
}

type fieldInfo struct {
	index            []int
	name             string
	typ              reflect.Type
	isAdditionalData bool
	ignore           bool
}

type structMetadata struct {
	fields              []fieldInfo
	fieldsByName        map[string]*fieldInfo
	additionalDataField *fieldInfo
}

// Adapter fills dataset tables from objects, collections and views.
// The column list of a fill is local to the call, so one Adapter may serve
// concurrent fills of different tables.
type Adapter struct {
	converters    atomic.Value // holds *converterRegistry
	registryMu    sync.Mutex   // serialises registry writers
	metadataCache sync.Map     // map[reflect.Type]*structMetadata
	options       Options
	logger        *slog.Logger
}

// New creates an Adapter with default options.
func New() *Adapter { return NewWithOptions() }

// NewWithOptions creates a new Adapter with provided options.
func NewWithOptions(opts ...Option) *Adapter {
	a := &Adapter{}
	optsState := Options{TimeLayout: DefaultTimeLayout}
	for _, f := range opts {
		f(&optsState)
	}
	if optsState.TimeLayout == "" {
		optsState.TimeLayout = DefaultTimeLayout
	}
	a.options = optsState
	a.logger = optsState.Logger
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a.converters.Store(defaultRegistry(optsState.TimeLayout))
	return a
}

// defaultRegistry seeds value type converters for the nullable and JSON model
// types so they render as their value instead of their struct layout.
func defaultRegistry(timeLayout string) *converterRegistry {
	reg := newConverterRegistry()
	for _, sample := range []any{
		null.String{}, null.Bool{}, null.Int{}, null.Int32{}, null.Int64{},
		null.Float32{}, null.Float64{}, null.Bytes{},
	} {
		reg.byType[reflect.TypeOf(sample)] = common.NullToValue
	}
	timeText := common.TimeToText(timeLayout)
	reg.byType[reflect.TypeOf(time.Time{})] = timeText
	reg.byType[reflect.TypeOf(null.Time{})] = timeText
	reg.byType[reflect.TypeOf(null.JSON{})] = common.JSONToText
	reg.byType[reflect.TypeOf(boilertypes.JSON{})] = common.JSONToText
	return reg
}

// Options returns a copy of the adapter options.
func (a *Adapter) Options() Options { return a.options }

func (a *Adapter) registry() *converterRegistry {
	return a.converters.Load().(*converterRegistry)
}

func (a *Adapter) updateRegistry(fn func(*converterRegistry)) {
	a.registryMu.Lock()
	defer a.registryMu.Unlock()
	next := a.registry().clone()
	fn(next)
	a.converters.Store(next)
}

// RegisterConverter adds a converter for a member name of any source type.
func (a *Adapter) RegisterConverter(fieldName string, fn ConverterFunc) {
	a.updateRegistry(func(r *converterRegistry) { r.byField[fieldName] = fn })
}

// RegisterConverterFor adds a converter for a member name of one source type.
// It takes precedence over RegisterConverter for that type.
func (a *Adapter) RegisterConverterFor(srcType any, fieldName string, fn ConverterFunc) {
	st := indirectType(reflect.TypeOf(srcType))
	a.updateRegistry(func(r *converterRegistry) {
		m := r.bySource[st]
		if m == nil {
			m = make(map[string]ConverterFunc)
			r.bySource[st] = m
		}
		m[fieldName] = fn
	})
}

// RegisterTypeConverter adds a converter applied to every value of the same
// type as sample. Values of such types are treated as scalars when they are
// elements of a sequence.
func (a *Adapter) RegisterTypeConverter(sample any, fn ConverterFunc) {
	t := reflect.TypeOf(sample)
	a.updateRegistry(func(r *converterRegistry) { r.byType[t] = fn })
}

// WarmMetadata pre-builds member metadata for provided example values or types (pass either a value or a *T or T).
func (a *Adapter) WarmMetadata(examples ...any) {
	for _, e := range examples {
		if e == nil {
			continue
		}
		t := indirectType(reflect.TypeOf(e))
		if t.Kind() != reflect.Struct {
			continue
		}
		_ = a.getOrBuildMetadata(t)
	}
}

// Fill runs column discovery on source and appends one row per source
// element to table. Cell extraction failures never fail the fill; the error
// text becomes the cell value. Errors are returned only for a nil table or
// source.
func (a *Adapter) Fill(table *dataset.DataTable, source any) error {
	const op errors.Op = "tabular.Adapter.Fill"
	if table == nil {
		return errors.New(op).Msg("destination table must not be nil")
	}
	if isNilSource(source) {
		return errors.New(op).Msg("source must not be nil")
	}

	reg := a.registry()
	inner := unwrap(source)
	columns := a.discover(reg, inner)
	a.logger.Debug("columns discovered", "table", table.Name(), "source", TypeName(source), "columns", columns)

	if err := a.copyRows(reg, table, inner, columns); err != nil {
		return errors.New(op).Err(err)
	}
	return nil
}

// FillDataSet fills the table named after the source's runtime type.
func (a *Adapter) FillDataSet(ds *dataset.DataSet, source any) error {
	return a.FillDataSetNamed(ds, TypeName(source), source)
}

// FillDataSetNamed fills the named table of ds, creating it when absent.
// A newly created table is added to ds only after the fill succeeded.
func (a *Adapter) FillDataSetNamed(ds *dataset.DataSet, tableName string, source any) error {
	const op errors.Op = "tabular.Adapter.FillDataSetNamed"
	if ds == nil {
		return errors.New(op).Msg("destination data set must not be nil")
	}

	table, exists := ds.Table(tableName)
	if !exists {
		table = dataset.NewDataTable(tableName)
	}
	if err := a.Fill(table, source); err != nil {
		return err
	}
	if !exists {
		if err := ds.AddTable(table); err != nil {
			return errors.New(op).Err(err)
		}
	}
	return nil
}

// TypeName returns the name of the source's runtime type, pointers
// dereferenced. Unnamed types such as slices use their type string.
func TypeName(source any) string {
	t := reflect.TypeOf(source)
	if t == nil {
		return ""
	}
	t = indirectType(t)
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

// --- metadata helpers ---

func (a *Adapter) getOrBuildMetadata(typ reflect.Type) *structMetadata {
	if cached, ok := a.metadataCache.Load(typ); ok {
		return cached.(*structMetadata)
	}
	meta := &structMetadata{fields: make([]fieldInfo, 0, countFields(typ, nil))}
	buildFieldMetadata(typ, meta, nil, map[reflect.Type]bool{typ: true})
	meta.fields = visibleFields(meta.fields)
	meta.fieldsByName = make(map[string]*fieldInfo, len(meta.fields))
	for i := range meta.fields {
		fi := &meta.fields[i]
		meta.fieldsByName[fi.name] = fi
	}
	if ad, ok := meta.fieldsByName["AdditionalData"]; ok && ad.isAdditionalData {
		meta.additionalDataField = ad
	}
	actual, _ := a.metadataCache.LoadOrStore(typ, meta)
	return actual.(*structMetadata)
}

func safeFieldByIndex(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, true
}

func embeddedStruct(f reflect.StructField) (reflect.Type, bool) {
	if !f.Anonymous {
		return nil, false
	}
	ft := f.Type
	if ft.Kind() == reflect.Ptr {
		ft = ft.Elem()
	}
	return ft, ft.Kind() == reflect.Struct
}

func countFields(typ reflect.Type, seen map[reflect.Type]bool) int {
	if seen == nil {
		seen = map[reflect.Type]bool{typ: true}
	}
	c := 0
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if ft, ok := embeddedStruct(f); ok {
			if !seen[ft] {
				seen[ft] = true
				c += countFields(ft, seen)
				delete(seen, ft)
			}
			continue
		}
		if f.PkgPath != "" {
			continue
		}
		c++
	}
	return c
}

// buildFieldMetadata flattens embedded structs in declaration order. seen
// holds the types on the current embedding path to stop pointer cycles.
func buildFieldMetadata(typ reflect.Type, meta *structMetadata, prefix []int, seen map[reflect.Type]bool) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if ft, ok := embeddedStruct(f); ok {
			if !seen[ft] {
				seen[ft] = true
				buildFieldMetadata(ft, meta, idx, seen)
				delete(seen, ft)
			}
			continue
		}
		if f.PkgPath != "" {
			continue
		}
		adapterTag := f.Tag.Get("adapter")
		ignore := adapterTag == "ignore" || adapterTag == "-"
		isAD := f.Name == "AdditionalData" && (f.Type == reflect.TypeOf(null.JSON{}) || f.Type == reflect.TypeOf(boilertypes.JSON{}))
		meta.fields = append(meta.fields, fieldInfo{index: idx, name: f.Name, typ: f.Type, isAdditionalData: isAD, ignore: ignore})
	}
}

// visibleFields drops promoted fields shadowed by a shallower field of the
// same name. At equal depth the first declared field wins.
func visibleFields(fields []fieldInfo) []fieldInfo {
	minDepth := make(map[string]int, len(fields))
	for _, f := range fields {
		if d, ok := minDepth[f.name]; !ok || len(f.index) < d {
			minDepth[f.name] = len(f.index)
		}
	}
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if len(f.index) != minDepth[f.name] || seen[f.name] {
			continue
		}
		seen[f.name] = true
		out = append(out, f)
	}
	return out
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
