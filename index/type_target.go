package index

import "fmt"

// TypeTarget represents a type use inside another declaration, e.g. an
// annotated type argument in a field's declared type. The enclosing target
// is the declaration the use appears in.
type TypeTarget struct {
	enclosing AnnotationTarget
	typ       TypeRef
}

// NewTypeTarget constructs a type-use target inside the given enclosing
// declaration.
func NewTypeTarget(enclosing AnnotationTarget, typ TypeRef) (*TypeTarget, error) {
	if enclosing == nil {
		return nil, fmt.Errorf("%w: enclosing target must not be nil", ErrInvalidArgument)
	}
	return &TypeTarget{enclosing: enclosing, typ: typ}, nil
}

// EnclosingTarget returns the declaration this type use appears in.
func (t *TypeTarget) EnclosingTarget() AnnotationTarget {
	return t.enclosing
}

// Type returns the type being used.
func (t *TypeTarget) Type() TypeRef {
	return t.typ
}

// String returns a source-like description of the type use.
func (t *TypeTarget) String() string {
	return fmt.Sprintf("use of %s in %s", t.typ, t.enclosing)
}

// Kind returns KindType.
func (t *TypeTarget) Kind() Kind {
	return KindType
}

// AsClass fails; a type use is not a class.
func (t *TypeTarget) AsClass() (*ClassInfo, error) {
	return nil, wrongKind(KindType, KindClass)
}

// AsField fails; a type use is not a field.
func (t *TypeTarget) AsField() (*FieldInfo, error) {
	return nil, wrongKind(KindType, KindField)
}

// AsMethod fails; a type use is not a method.
func (t *TypeTarget) AsMethod() (*MethodInfo, error) {
	return nil, wrongKind(KindType, KindMethod)
}

// AsMethodParameter fails; a type use is not a method parameter.
func (t *TypeTarget) AsMethodParameter() (*MethodParameterInfo, error) {
	return nil, wrongKind(KindType, KindMethodParameter)
}

// AsType returns this type use.
func (t *TypeTarget) AsType() (*TypeTarget, error) {
	return t, nil
}

// AsRecordComponent fails; a type use is not a record component.
func (t *TypeTarget) AsRecordComponent() (*RecordComponentInfo, error) {
	return nil, wrongKind(KindType, KindRecordComponent)
}
