package model

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

const redacted = "*** Sensitive Data Redacted ***"

// Printer renders a value type as Name(Field=value, ...) and skips absent
// fields.
type Printer struct {
	name   string
	fields []string
}

// NewPrinter starts a printer for the named type
func NewPrinter(name string) *Printer {
	return &Printer{name: name}
}

// Field adds v when it is present. Pointers are dereferenced; nil pointers,
// slices and maps are absent.
func (p *Printer) Field(name string, v any) *Printer {
	text, ok := render(v)
	if ok {
		p.fields = append(p.fields, name+"="+text)
	}
	return p
}

// Sensitive adds a placeholder when v is present, never the value
func (p *Printer) Sensitive(name string, v any) *Printer {
	if _, ok := render(v); ok {
		p.fields = append(p.fields, name+"="+redacted)
	}
	return p
}

// String returns the rendered form
func (p *Printer) String() string {
	return p.name + "(" + strings.Join(p.fields, ", ") + ")"
}

func render(v any) (string, bool) {
	if v == nil {
		return "", false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
	}

	switch typed := v.(type) {
	case *time.Time:
		return typed.UTC().Format(time.RFC3339Nano), true
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(typed)), true
	case fmt.Stringer:
		return typed.String(), true
	}

	if rv.Kind() == reflect.Pointer {
		return fmt.Sprint(rv.Elem().Interface()), true
	}
	return fmt.Sprint(v), true
}
