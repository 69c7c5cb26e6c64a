package tabular

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/Station-Manager/tabular/dataset"
	"github.com/goccy/go-json"
)

var (
	errNilElement  = errors.New("element is nil")
	errNilEmbedded = errors.New("embedded struct pointer is nil")
)

// GetField renders the named member of element as cell text.
//
// View rows are read by column name. Primitive values render themselves and
// strings are returned unchanged, whatever the name. Other objects resolve
// the name to a readable property, then an exported field, then a map key.
// Failures are returned as *FieldError.
func (a *Adapter) GetField(element any, fieldName string) (string, error) {
	return a.getField(a.registry(), element, fieldName)
}

func (a *Adapter) getField(reg *converterRegistry, element any, field string) (text string, err error) {
	if rv, ok := element.(RowView); ok && rv != nil {
		return a.viewField(reg, rv, field)
	}
	if isScalar(reg, element) {
		return a.renderGuarded(reg, nil, field, element)
	}
	if isText(element) {
		v, _ := indirectValue(element)
		return v.String(), nil
	}

	defer func() {
		if r := recover(); r != nil {
			text, err = "", extractionFailure(field, fmt.Errorf("panic: %v", r))
		}
	}()
	return a.objectField(reg, element, field)
}

func (a *Adapter) viewField(reg *converterRegistry, row RowView, field string) (string, error) {
	val, err := row.Get(field)
	if err != nil {
		if errors.Is(err, dataset.ErrColumnNotFound) {
			return "", &FieldError{Kind: AbsentViewColumn, Field: field, Err: err}
		}
		return "", extractionFailure(field, err)
	}
	return a.renderGuarded(reg, nil, field, val)
}

func (a *Adapter) objectField(reg *converterRegistry, element any, field string) (string, error) {
	if element == nil {
		return "", extractionFailure(field, errNilElement)
	}
	srcType := indirectType(reflect.TypeOf(element))

	if ps, ok := element.(PropertySource); ok && hasProperty(ps, field) {
		val, err := ps.ReadProperty(field)
		if err != nil {
			return "", extractionFailure(field, err)
		}
		return a.render(reg, srcType, field, val)
	}

	rv, ok := indirectValue(element)
	if !ok {
		return "", extractionFailure(field, errNilElement)
	}

	switch rv.Kind() {
	case reflect.Struct:
		meta := a.getOrBuildMetadata(rv.Type())
		if fi, found := meta.fieldsByName[field]; found && !fi.ignore {
			fv, reachable := safeFieldByIndex(rv, fi.index)
			if !reachable {
				return "", extractionFailure(field, errNilEmbedded)
			}
			return a.render(reg, srcType, field, fv.Interface())
		}
		if a.options.ExpandAdditionalData && meta.additionalDataField != nil {
			extra, err := additionalData(rv, meta)
			if err != nil {
				return "", extractionFailure(field, err)
			}
			if raw, found := extra[field]; found {
				var val any
				if err := decodeNumbers(raw, &val); err != nil {
					return "", extractionFailure(field, err)
				}
				return a.render(reg, srcType, field, val)
			}
		}
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() == reflect.String {
			mv := rv.MapIndex(reflect.ValueOf(field).Convert(kt))
			if mv.IsValid() {
				return a.render(reg, srcType, field, mv.Interface())
			}
		}
	}
	return "", missingMember(field)
}

// renderGuarded is render with converter panics reported as extraction failures.
func (a *Adapter) renderGuarded(reg *converterRegistry, srcType reflect.Type, field string, val any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", extractionFailure(field, fmt.Errorf("panic: %v", r))
		}
	}()
	return a.render(reg, srcType, field, val)
}

// render applies the member converter, then the value type converter, then
// the default text form.
func (a *Adapter) render(reg *converterRegistry, srcType reflect.Type, field string, val any) (string, error) {
	if fn := reg.fieldConverter(srcType, field); fn != nil {
		out, err := fn(val)
		if err != nil {
			return "", extractionFailure(field, err)
		}
		val = out
	}

	converted := false
	for {
		if val == nil {
			return a.options.NullText, nil
		}
		rv := reflect.ValueOf(val)
		if rv.Kind() == reflect.Ptr {
			if rv.IsNil() {
				return a.options.NullText, nil
			}
			val = rv.Elem().Interface()
			continue
		}
		if fn, ok := reg.byType[rv.Type()]; ok && !converted {
			out, err := fn(val)
			if err != nil {
				return "", extractionFailure(field, err)
			}
			val, converted = out, true
			continue
		}
		break
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	}
	return fmt.Sprint(val), nil
}

func hasProperty(ps PropertySource, name string) bool {
	if pl, ok := ps.(PropertyLookup); ok {
		return pl.HasProperty(name)
	}
	for _, n := range ps.PropertyNames() {
		if n == name {
			return true
		}
	}
	return false
}
