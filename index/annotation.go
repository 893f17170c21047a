package index

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind represents the kind of an annotation member value
type ValueKind int

const (
	// ValueString is a string member value
	ValueString ValueKind = iota
	// ValueInt is an integral member value
	ValueInt
	// ValueBool is a boolean member value
	ValueBool
	// ValueClass is a class-valued member, e.g. the container named by a
	// repeatable meta-annotation
	ValueClass
	// ValueNested is a nested annotation instance
	ValueNested
	// ValueArray is an array of member values
	ValueArray
)

// String returns the string representation of ValueKind
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueBool:
		return "bool"
	case ValueClass:
		return "class"
	case ValueNested:
		return "nested"
	case ValueArray:
		return "array"
	}
	return "unknown"
}

// AnnotationValue is one bound member of an annotation instance. Narrowing
// accessors return ErrWrongValueKind when the value does not hold the
// requested kind.
type AnnotationValue struct {
	name   string
	kind   ValueKind
	str    string
	num    int64
	b      bool
	class  TypeRef
	nested *AnnotationInstance
	array  []AnnotationValue
}

// StringValue returns a string member value.
func StringValue(name, v string) AnnotationValue {
	return AnnotationValue{name: name, kind: ValueString, str: v}
}

// IntValue returns an integral member value.
func IntValue(name string, v int64) AnnotationValue {
	return AnnotationValue{name: name, kind: ValueInt, num: v}
}

// BoolValue returns a boolean member value.
func BoolValue(name string, v bool) AnnotationValue {
	return AnnotationValue{name: name, kind: ValueBool, b: v}
}

// ClassValue returns a class-valued member.
func ClassValue(name string, t TypeRef) AnnotationValue {
	return AnnotationValue{name: name, kind: ValueClass, class: t}
}

// NestedValue returns a nested annotation member value.
func NestedValue(name string, inst *AnnotationInstance) AnnotationValue {
	return AnnotationValue{name: name, kind: ValueNested, nested: inst}
}

// ArrayValue returns an array member value holding the given elements.
func ArrayValue(name string, elements ...AnnotationValue) AnnotationValue {
	return AnnotationValue{name: name, kind: ValueArray, array: elements}
}

// Name returns the member name this value is bound to.
func (v AnnotationValue) Name() string {
	return v.name
}

// Kind returns the kind of this value.
func (v AnnotationValue) Kind() ValueKind {
	return v.kind
}

// AsString narrows the value to a string.
func (v AnnotationValue) AsString() (string, error) {
	if v.kind != ValueString {
		return "", fmt.Errorf("%w: %s is not a string", ErrWrongValueKind, v.kind)
	}
	return v.str, nil
}

// AsInt narrows the value to an integer.
func (v AnnotationValue) AsInt() (int64, error) {
	if v.kind != ValueInt {
		return 0, fmt.Errorf("%w: %s is not an int", ErrWrongValueKind, v.kind)
	}
	return v.num, nil
}

// AsBool narrows the value to a boolean.
func (v AnnotationValue) AsBool() (bool, error) {
	if v.kind != ValueBool {
		return false, fmt.Errorf("%w: %s is not a bool", ErrWrongValueKind, v.kind)
	}
	return v.b, nil
}

// AsClass narrows the value to a class-valued type descriptor.
func (v AnnotationValue) AsClass() (TypeRef, error) {
	if v.kind != ValueClass {
		return TypeRef{}, fmt.Errorf("%w: %s is not a class", ErrWrongValueKind, v.kind)
	}
	return v.class, nil
}

// AsNested narrows the value to a nested annotation instance.
func (v AnnotationValue) AsNested() (*AnnotationInstance, error) {
	if v.kind != ValueNested {
		return nil, fmt.Errorf("%w: %s is not a nested annotation", ErrWrongValueKind, v.kind)
	}
	return v.nested, nil
}

// AsArray narrows the value to its element values.
func (v AnnotationValue) AsArray() ([]AnnotationValue, error) {
	if v.kind != ValueArray {
		return nil, fmt.Errorf("%w: %s is not an array", ErrWrongValueKind, v.kind)
	}
	return v.array, nil
}

// AsNestedArray narrows the value to an array of nested annotation instances.
// Every element must itself be a nested annotation.
func (v AnnotationValue) AsNestedArray() ([]*AnnotationInstance, error) {
	elements, err := v.AsArray()
	if err != nil {
		return nil, err
	}
	instances := make([]*AnnotationInstance, len(elements))
	for i, e := range elements {
		nested, err := e.AsNested()
		if err != nil {
			return nil, fmt.Errorf("array element %d: %w", i, err)
		}
		instances[i] = nested
	}
	return instances, nil
}

// Equal reports structural equality of two member values.
func (v AnnotationValue) Equal(o AnnotationValue) bool {
	if v.name != o.name || v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueString:
		return v.str == o.str
	case ValueInt:
		return v.num == o.num
	case ValueBool:
		return v.b == o.b
	case ValueClass:
		return v.class.Equal(o.class)
	case ValueNested:
		return v.nested.Equal(o.nested)
	case ValueArray:
		if len(v.array) != len(o.array) {
			return false
		}
		for i := range v.array {
			if !v.array[i].Equal(o.array[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the member in source-like form.
func (v AnnotationValue) String() string {
	var rendered string
	switch v.kind {
	case ValueString:
		rendered = strconv.Quote(v.str)
	case ValueInt:
		rendered = strconv.FormatInt(v.num, 10)
	case ValueBool:
		rendered = strconv.FormatBool(v.b)
	case ValueClass:
		rendered = v.class.String() + ".class"
	case ValueNested:
		rendered = v.nested.String()
	case ValueArray:
		parts := make([]string, len(v.array))
		for i, e := range v.array {
			parts[i] = e.String()
		}
		rendered = "{" + strings.Join(parts, ", ") + "}"
	}
	if v.name == "" {
		return rendered
	}
	return v.name + " = " + rendered
}

// AnnotationInstance is a concrete occurrence of an annotation type with
// bound member values. Instances are immutable once attached to a target.
type AnnotationInstance struct {
	name   Name
	target AnnotationTarget
	values []AnnotationValue
}

// NewAnnotation creates a detached annotation instance. The target is bound
// when the instance is attached through the Indexer.
func NewAnnotation(name Name, values ...AnnotationValue) *AnnotationInstance {
	return &AnnotationInstance{name: name, values: values}
}

// Name returns the fully qualified name of the annotation type.
func (a *AnnotationInstance) Name() Name {
	return a.name
}

// Target returns the declaration this instance is attached to, or nil for a
// detached instance (e.g. one nested inside a container value).
func (a *AnnotationInstance) Target() AnnotationTarget {
	return a.target
}

// Values returns the bound member values in declaration order.
func (a *AnnotationInstance) Values() []AnnotationValue {
	return a.values
}

// Value looks up a member value by name.
func (a *AnnotationInstance) Value(member string) (AnnotationValue, bool) {
	for _, v := range a.values {
		if v.name == member {
			return v, true
		}
	}
	return AnnotationValue{}, false
}

// Equal reports structural equality of two instances. The attachment target
// is identity, not content, and does not participate.
func (a *AnnotationInstance) Equal(o *AnnotationInstance) bool {
	if a == o {
		return true
	}
	if a == nil || o == nil {
		return false
	}
	if a.name != o.name || len(a.values) != len(o.values) {
		return false
	}
	for i := range a.values {
		if !a.values[i].Equal(o.values[i]) {
			return false
		}
	}
	return true
}

// String renders the instance in source-like form, e.g.
// @com.example.Tag(value = "a").
func (a *AnnotationInstance) String() string {
	if len(a.values) == 0 {
		return "@" + a.name.String()
	}
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = v.String()
	}
	return "@" + a.name.String() + "(" + strings.Join(parts, ", ") + ")"
}
