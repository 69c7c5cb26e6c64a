package tabular

import (
	"reflect"
	"sort"

	"github.com/Station-Manager/tabular/dataset"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// DiscoverColumns returns the column names Fill would create for source.
func (a *Adapter) DiscoverColumns(source any) []string {
	if isNilSource(source) {
		return nil
	}
	return a.discover(a.registry(), unwrap(source))
}

// unwrap resolves list sources to their list and tables to their default view.
func unwrap(source any) any {
	if ls, ok := source.(ListSource); ok {
		source = ls.List()
	}
	if t, ok := source.(*dataset.DataTable); ok && t != nil {
		return t.DefaultView()
	}
	return source
}

func (a *Adapter) discover(reg *converterRegistry, inner any) []string {
	// a list source may hand back a typed nil view or slice pointer
	if isNilSource(inner) {
		return nil
	}
	var columns []string
	if v, ok := inner.(View); ok {
		columns = append(columns, v.ColumnNames()...)
	} else if seq, ok := sequenceOf(inner); ok {
		columns = a.scanSequence(reg, seq)
	} else {
		columns = a.scanObject(inner)
	}
	if a.options.DedupColumns {
		columns = dedup(columns)
	}
	return columns
}

// scanSequence derives columns from the first element only.
func (a *Adapter) scanSequence(reg *converterRegistry, seq reflect.Value) []string {
	if seq.Len() == 0 {
		return nil
	}
	first := elementAt(seq, 0)
	switch {
	case isScalar(reg, first):
		return []string{ValueColumn}
	case isText(first):
		return []string{TextColumn}
	default:
		return a.scanObject(first)
	}
}

// scanObject lists readable properties first, then exported fields.
func (a *Adapter) scanObject(obj any) []string {
	if obj == nil {
		return nil
	}
	var columns []string
	if ps, ok := obj.(PropertySource); ok {
		columns = append(columns, ps.PropertyNames()...)
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return columns
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		meta := a.getOrBuildMetadata(rv.Type())
		for i := range meta.fields {
			f := &meta.fields[i]
			if f.ignore || (f.isAdditionalData && a.options.ExpandAdditionalData) {
				continue
			}
			columns = append(columns, f.name)
		}
		if a.options.ExpandAdditionalData && meta.additionalDataField != nil {
			extra, err := additionalData(rv, meta)
			if err != nil {
				a.logger.Debug("additional data not expanded", "type", rv.Type().String(), "error", err)
			}
			columns = append(columns, sortedKeys(extra)...)
		}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			keys := make([]string, 0, rv.Len())
			for _, k := range rv.MapKeys() {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			columns = append(columns, keys...)
		}
	}
	return columns
}

// additionalData decodes the AdditionalData JSON object of a struct value.
// NULL or empty data yields an empty map.
func additionalData(rv reflect.Value, meta *structMetadata) (map[string]json.RawMessage, error) {
	fv, ok := safeFieldByIndex(rv, meta.additionalDataField.index)
	if !ok {
		return nil, nil
	}
	var raw []byte
	switch v := fv.Interface().(type) {
	case null.JSON:
		if !v.Valid {
			return nil, nil
		}
		raw = v.JSON
	case boilertypes.JSON:
		raw = v
	}
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]json.RawMessage)
	if err := decodeNumbers(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func dedup(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// sequenceOf reports whether v is a slice or array, following pointers.
func sequenceOf(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// []byte is a single value, not a sequence of numbers
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return reflect.Value{}, false
		}
		return rv, true
	}
	return reflect.Value{}, false
}

// elementAt returns element i, addressed when only its pointer publishes
// properties.
func elementAt(seq reflect.Value, i int) any {
	ev := seq.Index(i)
	if ev.Kind() != reflect.Ptr && ev.Kind() != reflect.Interface && ev.CanAddr() {
		if !ev.Type().Implements(propertySourceType) && reflect.PointerTo(ev.Type()).Implements(propertySourceType) {
			return ev.Addr().Interface()
		}
	}
	return ev.Interface()
}

var propertySourceType = reflect.TypeOf((*PropertySource)(nil)).Elem()

func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// isScalar reports whether v is a primitive value or a value with a
// registered type converter.
func isScalar(reg *converterRegistry, v any) bool {
	rv, ok := indirectValue(v)
	if !ok {
		return false
	}
	if _, conv := reg.byType[rv.Type()]; conv {
		return true
	}
	return isScalarKind(rv.Kind())
}

func isText(v any) bool {
	rv, ok := indirectValue(v)
	return ok && rv.Kind() == reflect.String
}

// indirectValue follows pointers; ok is false for nil.
func indirectValue(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

func isNilSource(source any) bool {
	if source == nil {
		return true
	}
	rv := reflect.ValueOf(source)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
