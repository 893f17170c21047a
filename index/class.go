package index

import "fmt"

// ClassInfo represents a class, interface, enum, or annotation declaration.
// It is the declaring owner of field and method records and the record type
// served by the index catalog.
//
// A ClassInfo is immutable once its index has been completed and can be
// shared between goroutines without synchronization.
type ClassInfo struct {
	name        Name
	flags       Flags
	annotations []*AnnotationInstance
	fields      []*FieldInfo
	methods     []*MethodInfo
	components  []*RecordComponentInfo
}

// NewClass constructs a standalone class record, used for synthetic or mock
// declarations in tooling. Records populated by a reader are created through
// the Indexer instead.
func NewClass(name Name, flags Flags) (*ClassInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: class name must not be empty", ErrInvalidArgument)
	}
	return &ClassInfo{name: name, flags: flags}, nil
}

// Name returns the fully qualified name of the class.
func (c *ClassInfo) Name() Name {
	return c.name
}

// Flags returns the access flags of the class.
func (c *ClassInfo) Flags() Flags {
	return c.flags
}

// IsAnnotationType returns true if this class declares an annotation type.
func (c *ClassInfo) IsAnnotationType() bool {
	return c.flags&FlagAnnotation != 0
}

// IsInterface returns true if this class declares an interface.
func (c *ClassInfo) IsInterface() bool {
	return c.flags&FlagInterface != 0
}

// IsEnum returns true if this class declares an enum.
func (c *ClassInfo) IsEnum() bool {
	return c.flags&FlagEnum != 0
}

// Annotations returns the annotation instances declared directly on this
// class. It may be empty, but never nil.
func (c *ClassInfo) Annotations() []*AnnotationInstance {
	if c.annotations == nil {
		return []*AnnotationInstance{}
	}
	return c.annotations
}

// Annotation retrieves an annotation instance declared directly on this
// class by the name of the annotation type.
func (c *ClassInfo) Annotation(name Name) (*AnnotationInstance, bool) {
	return lookupAnnotation(c.annotations, name)
}

// HasAnnotation returns whether an annotation instance with the given name
// occurs directly on this class.
func (c *ClassInfo) HasAnnotation(name Name) bool {
	_, ok := c.Annotation(name)
	return ok
}

// AnnotationsWithRepeatable retrieves annotation instances declared on this
// class, expanding a repeatable annotation's container when the direct form
// is absent.
func (c *ClassInfo) AnnotationsWithRepeatable(name Name, view View) ([]*AnnotationInstance, error) {
	return annotationsWithRepeatable(c, name, view)
}

// Fields returns the field records declared by this class.
func (c *ClassInfo) Fields() []*FieldInfo {
	if c.fields == nil {
		return []*FieldInfo{}
	}
	return c.fields
}

// Field looks up a declared field by its simple name.
func (c *ClassInfo) Field(name string) (*FieldInfo, bool) {
	for _, f := range c.fields {
		if f.name == name {
			return f, true
		}
	}
	return nil, false
}

// Methods returns the method records declared by this class.
func (c *ClassInfo) Methods() []*MethodInfo {
	if c.methods == nil {
		return []*MethodInfo{}
	}
	return c.methods
}

// Method looks up a declared method by its simple name.
func (c *ClassInfo) Method(name string) (*MethodInfo, bool) {
	for _, m := range c.methods {
		if m.name == name {
			return m, true
		}
	}
	return nil, false
}

// RecordComponents returns the record components declared by this class.
func (c *ClassInfo) RecordComponents() []*RecordComponentInfo {
	if c.components == nil {
		return []*RecordComponentInfo{}
	}
	return c.components
}

// Equal reports whether two class records describe the same declaration.
// Owner references are typically shared, so pointer identity is the common
// fast path.
func (c *ClassInfo) Equal(o *ClassInfo) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.name == o.name && c.flags == o.flags
}

// String returns a source-like description of the class.
func (c *ClassInfo) String() string {
	return c.name.String()
}

// Kind returns KindClass.
func (c *ClassInfo) Kind() Kind {
	return KindClass
}

// AsClass returns this class.
func (c *ClassInfo) AsClass() (*ClassInfo, error) {
	return c, nil
}

// AsField fails; a class is not a field.
func (c *ClassInfo) AsField() (*FieldInfo, error) {
	return nil, wrongKind(KindClass, KindField)
}

// AsMethod fails; a class is not a method.
func (c *ClassInfo) AsMethod() (*MethodInfo, error) {
	return nil, wrongKind(KindClass, KindMethod)
}

// AsMethodParameter fails; a class is not a method parameter.
func (c *ClassInfo) AsMethodParameter() (*MethodParameterInfo, error) {
	return nil, wrongKind(KindClass, KindMethodParameter)
}

// AsType fails; a class is not a type use.
func (c *ClassInfo) AsType() (*TypeTarget, error) {
	return nil, wrongKind(KindClass, KindType)
}

// AsRecordComponent fails; a class is not a record component.
func (c *ClassInfo) AsRecordComponent() (*RecordComponentInfo, error) {
	return nil, wrongKind(KindClass, KindRecordComponent)
}

// setAnnotations replaces the annotation set during two-phase population.
func (c *ClassInfo) setAnnotations(annotations []*AnnotationInstance) {
	c.annotations = annotations
}

// lookupAnnotation performs the direct by-name scan shared by all targets.
// Attached sets are small; a linear scan beats a map for typical records.
func lookupAnnotation(annotations []*AnnotationInstance, name Name) (*AnnotationInstance, bool) {
	for _, a := range annotations {
		if a.name == name {
			return a, true
		}
	}
	return nil, false
}
