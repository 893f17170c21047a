package index

import "fmt"

// RecordComponentInfo represents one component of a record declaration.
type RecordComponentInfo struct {
	owner       *ClassInfo
	name        string
	typ         TypeRef
	annotations []*AnnotationInstance
}

// NewRecordComponent constructs a standalone record component record.
func NewRecordComponent(owner *ClassInfo, name string, typ TypeRef) (*RecordComponentInfo, error) {
	if owner == nil {
		return nil, fmt.Errorf("%w: record component owner must not be nil", ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: record component name must not be empty", ErrInvalidArgument)
	}
	return &RecordComponentInfo{owner: owner, name: name, typ: typ}, nil
}

// Name returns the simple name of the component.
func (r *RecordComponentInfo) Name() string {
	return r.name
}

// DeclaringClass returns the record class declaring this component.
func (r *RecordComponentInfo) DeclaringClass() *ClassInfo {
	return r.owner
}

// Type returns the declared type of the component.
func (r *RecordComponentInfo) Type() TypeRef {
	return r.typ
}

// Annotations returns the annotation instances declared on this component.
// It may be empty, but never nil.
func (r *RecordComponentInfo) Annotations() []*AnnotationInstance {
	if r.annotations == nil {
		return []*AnnotationInstance{}
	}
	return r.annotations
}

// Annotation retrieves an annotation instance declared on this component by
// the name of the annotation type.
func (r *RecordComponentInfo) Annotation(name Name) (*AnnotationInstance, bool) {
	return lookupAnnotation(r.annotations, name)
}

// String returns a source-like description of the component.
func (r *RecordComponentInfo) String() string {
	return fmt.Sprintf("%s %s.%s", r.typ, r.owner.name, r.name)
}

// Kind returns KindRecordComponent.
func (r *RecordComponentInfo) Kind() Kind {
	return KindRecordComponent
}

// AsClass fails; a record component is not a class.
func (r *RecordComponentInfo) AsClass() (*ClassInfo, error) {
	return nil, wrongKind(KindRecordComponent, KindClass)
}

// AsField fails; a record component is not a field.
func (r *RecordComponentInfo) AsField() (*FieldInfo, error) {
	return nil, wrongKind(KindRecordComponent, KindField)
}

// AsMethod fails; a record component is not a method.
func (r *RecordComponentInfo) AsMethod() (*MethodInfo, error) {
	return nil, wrongKind(KindRecordComponent, KindMethod)
}

// AsMethodParameter fails; a record component is not a method parameter.
func (r *RecordComponentInfo) AsMethodParameter() (*MethodParameterInfo, error) {
	return nil, wrongKind(KindRecordComponent, KindMethodParameter)
}

// AsType fails; a record component is not a type use.
func (r *RecordComponentInfo) AsType() (*TypeTarget, error) {
	return nil, wrongKind(KindRecordComponent, KindType)
}

// AsRecordComponent returns this component.
func (r *RecordComponentInfo) AsRecordComponent() (*RecordComponentInfo, error) {
	return r, nil
}

// setAnnotations replaces the annotation set during two-phase population.
func (r *RecordComponentInfo) setAnnotations(annotations []*AnnotationInstance) {
	r.annotations = annotations
}
