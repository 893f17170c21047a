package index

import "strings"

// TypeKind represents the kind of a type descriptor
type TypeKind int

const (
	// TypePrimitive is a primitive type such as int or boolean
	TypePrimitive TypeKind = iota
	// TypeClass is a class or interface type
	TypeClass
	// TypeArray is an array type with a component type
	TypeArray
	// TypeParameterized is a generic type with bound type arguments
	TypeParameterized
)

// String returns the string representation of TypeKind
func (k TypeKind) String() string {
	switch k {
	case TypePrimitive:
		return "primitive"
	case TypeClass:
		return "class"
	case TypeArray:
		return "array"
	case TypeParameterized:
		return "parameterized"
	}
	return "unknown"
}

// TypeRef is an opaque type descriptor: the declared type of a field, a
// method return type, or a class-valued annotation member. It is a value
// type; the index stores and compares descriptors but never interprets them.
type TypeRef struct {
	kind      TypeKind
	name      Name
	component *TypeRef
	arguments []TypeRef
}

// PrimitiveType returns a descriptor for a primitive type.
func PrimitiveType(name Name) TypeRef {
	return TypeRef{kind: TypePrimitive, name: name}
}

// ClassType returns a descriptor for a class or interface type.
func ClassType(name Name) TypeRef {
	return TypeRef{kind: TypeClass, name: name}
}

// ArrayType returns a descriptor for an array of component.
func ArrayType(component TypeRef) TypeRef {
	return TypeRef{kind: TypeArray, component: &component}
}

// ParameterizedType returns a descriptor for a generic type with the given
// type arguments.
func ParameterizedType(name Name, arguments ...TypeRef) TypeRef {
	return TypeRef{kind: TypeParameterized, name: name, arguments: arguments}
}

// Kind returns the kind of this descriptor.
func (t TypeRef) Kind() TypeKind {
	return t.kind
}

// Name returns the type name. For arrays it is the empty name; use Component.
func (t TypeRef) Name() Name {
	return t.name
}

// Component returns the component type of an array descriptor.
func (t TypeRef) Component() (TypeRef, bool) {
	if t.component == nil {
		return TypeRef{}, false
	}
	return *t.component, true
}

// Arguments returns the type arguments of a parameterized descriptor.
func (t TypeRef) Arguments() []TypeRef {
	return t.arguments
}

// IsZero returns true for the zero descriptor, used as the placeholder before
// two-phase population backfills the real type.
func (t TypeRef) IsZero() bool {
	return t.name == "" && t.component == nil && len(t.arguments) == 0
}

// Equal reports structural equality of two descriptors.
func (t TypeRef) Equal(o TypeRef) bool {
	if t.kind != o.kind || t.name != o.name {
		return false
	}
	if (t.component == nil) != (o.component == nil) {
		return false
	}
	if t.component != nil && !t.component.Equal(*o.component) {
		return false
	}
	if len(t.arguments) != len(o.arguments) {
		return false
	}
	for i := range t.arguments {
		if !t.arguments[i].Equal(o.arguments[i]) {
			return false
		}
	}
	return true
}

// String renders the descriptor in source-like form, e.g.
// "java.util.List<java.lang.String>" or "int[]".
func (t TypeRef) String() string {
	switch t.kind {
	case TypeArray:
		if t.component == nil {
			return "[]"
		}
		return t.component.String() + "[]"
	case TypeParameterized:
		args := make([]string, len(t.arguments))
		for i, a := range t.arguments {
			args[i] = a.String()
		}
		return t.name.String() + "<" + strings.Join(args, ", ") + ">"
	}
	return t.name.String()
}
