package index

import (
	"fmt"
	"strings"
)

// MethodInfo represents a method or constructor declaration.
//
// Immutable once its index has been completed; safe for unsynchronized
// sharing.
type MethodInfo struct {
	owner       *ClassInfo
	name        string
	returns     TypeRef
	flags       Flags
	parameters  []*MethodParameterInfo
	annotations []*AnnotationInstance
}

// NewMethod constructs a standalone method record, used for synthetic or
// mock declarations in tooling.
func NewMethod(owner *ClassInfo, name string, returns TypeRef, flags Flags) (*MethodInfo, error) {
	if owner == nil {
		return nil, fmt.Errorf("%w: method owner must not be nil", ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: method name must not be empty", ErrInvalidArgument)
	}
	return &MethodInfo{owner: owner, name: name, returns: returns, flags: flags}, nil
}

// Name returns the simple name of the method.
func (m *MethodInfo) Name() string {
	return m.name
}

// DeclaringClass returns the class which declared the method.
func (m *MethodInfo) DeclaringClass() *ClassInfo {
	return m.owner
}

// ReturnType returns the declared return type of the method.
func (m *MethodInfo) ReturnType() TypeRef {
	return m.returns
}

// Flags returns the access flags of the method.
func (m *MethodInfo) Flags() Flags {
	return m.flags
}

// IsSynthetic returns whether this method is compiler-synthesized.
func (m *MethodInfo) IsSynthetic() bool {
	return m.flags.IsSynthetic()
}

// Parameters returns the formal parameters of the method.
func (m *MethodInfo) Parameters() []*MethodParameterInfo {
	if m.parameters == nil {
		return []*MethodParameterInfo{}
	}
	return m.parameters
}

// Annotations returns the annotation instances declared on this method. It
// may be empty, but never nil.
func (m *MethodInfo) Annotations() []*AnnotationInstance {
	if m.annotations == nil {
		return []*AnnotationInstance{}
	}
	return m.annotations
}

// Annotation retrieves an annotation instance declared on this method by the
// name of the annotation type.
func (m *MethodInfo) Annotation(name Name) (*AnnotationInstance, bool) {
	return lookupAnnotation(m.annotations, name)
}

// HasAnnotation returns whether an annotation instance with the given name
// occurs on this method.
func (m *MethodInfo) HasAnnotation(name Name) bool {
	_, ok := m.Annotation(name)
	return ok
}

// AnnotationsWithRepeatable retrieves annotation instances declared on this
// method, expanding a repeatable annotation's container when the direct form
// is absent.
func (m *MethodInfo) AnnotationsWithRepeatable(name Name, view View) ([]*AnnotationInstance, error) {
	return annotationsWithRepeatable(m, name, view)
}

// Equal reports whether two method records describe the same declaration.
func (m *MethodInfo) Equal(o *MethodInfo) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil {
		return false
	}
	return m.owner.Equal(o.owner) && m.name == o.name &&
		m.flags == o.flags && m.returns.Equal(o.returns)
}

// String returns a source-like description of the method.
func (m *MethodInfo) String() string {
	var b strings.Builder
	if mods := m.flags.modifiers(); mods != "" {
		b.WriteString(mods)
		b.WriteByte(' ')
	}
	if !m.returns.IsZero() {
		b.WriteString(m.returns.String())
		b.WriteByte(' ')
	}
	b.WriteString(m.owner.name.String())
	b.WriteByte('.')
	b.WriteString(m.name)
	b.WriteString("(...)")
	return b.String()
}

// Kind returns KindMethod.
func (m *MethodInfo) Kind() Kind {
	return KindMethod
}

// AsClass fails; a method is not a class.
func (m *MethodInfo) AsClass() (*ClassInfo, error) {
	return nil, wrongKind(KindMethod, KindClass)
}

// AsField fails; a method is not a field.
func (m *MethodInfo) AsField() (*FieldInfo, error) {
	return nil, wrongKind(KindMethod, KindField)
}

// AsMethod returns this method.
func (m *MethodInfo) AsMethod() (*MethodInfo, error) {
	return m, nil
}

// AsMethodParameter fails; a method is not a method parameter.
func (m *MethodInfo) AsMethodParameter() (*MethodParameterInfo, error) {
	return nil, wrongKind(KindMethod, KindMethodParameter)
}

// AsType fails; a method is not a type use.
func (m *MethodInfo) AsType() (*TypeTarget, error) {
	return nil, wrongKind(KindMethod, KindType)
}

// AsRecordComponent fails; a method is not a record component.
func (m *MethodInfo) AsRecordComponent() (*RecordComponentInfo, error) {
	return nil, wrongKind(KindMethod, KindRecordComponent)
}

// setReturnType replaces the return type during two-phase population.
func (m *MethodInfo) setReturnType(returns TypeRef) {
	m.returns = returns
}

// setAnnotations replaces the annotation set during two-phase population.
func (m *MethodInfo) setAnnotations(annotations []*AnnotationInstance) {
	m.annotations = annotations
}

// MethodParameterInfo represents one formal parameter of a method.
type MethodParameterInfo struct {
	method      *MethodInfo
	position    int
	name        string
	typ         TypeRef
	annotations []*AnnotationInstance
}

// NewMethodParameter constructs a parameter record for the given method at
// the given zero-based position.
func NewMethodParameter(method *MethodInfo, position int, name string, typ TypeRef) (*MethodParameterInfo, error) {
	if method == nil {
		return nil, fmt.Errorf("%w: parameter method must not be nil", ErrInvalidArgument)
	}
	if position < 0 {
		return nil, fmt.Errorf("%w: parameter position must not be negative", ErrInvalidArgument)
	}
	return &MethodParameterInfo{method: method, position: position, name: name, typ: typ}, nil
}

// Method returns the method declaring this parameter.
func (p *MethodParameterInfo) Method() *MethodInfo {
	return p.method
}

// Position returns the zero-based position of the parameter.
func (p *MethodParameterInfo) Position() int {
	return p.position
}

// Name returns the parameter name, or "" when not recorded.
func (p *MethodParameterInfo) Name() string {
	return p.name
}

// Type returns the declared type of the parameter.
func (p *MethodParameterInfo) Type() TypeRef {
	return p.typ
}

// Annotations returns the annotation instances declared on this parameter.
// It may be empty, but never nil.
func (p *MethodParameterInfo) Annotations() []*AnnotationInstance {
	if p.annotations == nil {
		return []*AnnotationInstance{}
	}
	return p.annotations
}

// Annotation retrieves an annotation instance declared on this parameter by
// the name of the annotation type.
func (p *MethodParameterInfo) Annotation(name Name) (*AnnotationInstance, bool) {
	return lookupAnnotation(p.annotations, name)
}

// String returns a source-like description of the parameter.
func (p *MethodParameterInfo) String() string {
	return fmt.Sprintf("parameter %d of %s", p.position, p.method)
}

// Kind returns KindMethodParameter.
func (p *MethodParameterInfo) Kind() Kind {
	return KindMethodParameter
}

// AsClass fails; a method parameter is not a class.
func (p *MethodParameterInfo) AsClass() (*ClassInfo, error) {
	return nil, wrongKind(KindMethodParameter, KindClass)
}

// AsField fails; a method parameter is not a field.
func (p *MethodParameterInfo) AsField() (*FieldInfo, error) {
	return nil, wrongKind(KindMethodParameter, KindField)
}

// AsMethod fails; a method parameter is not a method.
func (p *MethodParameterInfo) AsMethod() (*MethodInfo, error) {
	return nil, wrongKind(KindMethodParameter, KindMethod)
}

// AsMethodParameter returns this parameter.
func (p *MethodParameterInfo) AsMethodParameter() (*MethodParameterInfo, error) {
	return p, nil
}

// AsType fails; a method parameter is not a type use.
func (p *MethodParameterInfo) AsType() (*TypeTarget, error) {
	return nil, wrongKind(KindMethodParameter, KindType)
}

// AsRecordComponent fails; a method parameter is not a record component.
func (p *MethodParameterInfo) AsRecordComponent() (*RecordComponentInfo, error) {
	return nil, wrongKind(KindMethodParameter, KindRecordComponent)
}

// setAnnotations replaces the annotation set during two-phase population.
func (p *MethodParameterInfo) setAnnotations(annotations []*AnnotationInstance) {
	p.annotations = annotations
}
