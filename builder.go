package tabular

import "reflect"

// Builder provides a fluent API to construct an Adapter with options and converters pre-registered.
type Builder struct {
	opts    []Option
	convsF  map[string]ConverterFunc
	convsS  map[reflect.Type]map[string]ConverterFunc
	convsT  map[reflect.Type]ConverterFunc
	warmups []any
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder {
	return &Builder{
		convsF: make(map[string]ConverterFunc),
		convsS: make(map[reflect.Type]map[string]ConverterFunc),
		convsT: make(map[reflect.Type]ConverterFunc),
	}
}

// WithOptions appends adapter options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// AddConverter registers a converter by member name for any source type.
func (b *Builder) AddConverter(field string, fn ConverterFunc) *Builder {
	b.convsF[field] = fn
	return b
}

// AddConverterFor registers a converter for a source type and member name.
func (b *Builder) AddConverterFor(src any, field string, fn ConverterFunc) *Builder {
	st := indirectType(reflect.TypeOf(src))
	m := b.convsS[st]
	if m == nil {
		m = make(map[string]ConverterFunc)
		b.convsS[st] = m
	}
	m[field] = fn
	return b
}

// AddTypeConverter registers a converter for every value of the same type as sample.
func (b *Builder) AddTypeConverter(sample any, fn ConverterFunc) *Builder {
	b.convsT[reflect.TypeOf(sample)] = fn
	return b
}

// Warm pre-builds member metadata for the given example values once the adapter is built.
func (b *Builder) Warm(examples ...any) *Builder { b.warmups = append(b.warmups, examples...); return b }

// Build constructs an Adapter using a single registry swap on top of the default type converters.
func (b *Builder) Build() *Adapter {
	a := NewWithOptions(b.opts...)
	a.updateRegistry(func(reg *converterRegistry) {
		for k, v := range b.convsF {
			reg.byField[k] = v
		}
		for t, m := range b.convsS {
			sub := reg.bySource[t]
			if sub == nil {
				sub = make(map[string]ConverterFunc, len(m))
				reg.bySource[t] = sub
			}
			for k, v := range m {
				sub[k] = v
			}
		}
		for t, v := range b.convsT {
			reg.byType[t] = v
		}
	})
	a.WarmMetadata(b.warmups...)
	return a
}
