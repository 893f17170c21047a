package index

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// FieldInfo represents a field declaration: its declaring class, simple name,
// declared type, access flags, and attached annotations.
//
// A FieldInfo is immutable once its index has been completed and can be
// shared between goroutines without synchronization. The reference to the
// declaring class is a shared, non-owning association; class records outlive
// their field records.
type FieldInfo struct {
	owner       *ClassInfo
	name        string
	typ         TypeRef
	flags       Flags
	annotations []*AnnotationInstance
}

// NewField constructs a standalone field record, used for synthetic or mock
// declarations in tooling. Records populated by a reader are created through
// the Indexer instead.
func NewField(owner *ClassInfo, name string, typ TypeRef, flags Flags) (*FieldInfo, error) {
	if owner == nil {
		return nil, fmt.Errorf("%w: field owner must not be nil", ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: field name must not be empty", ErrInvalidArgument)
	}
	return &FieldInfo{owner: owner, name: name, typ: typ, flags: flags}, nil
}

// Name returns the simple name of the field.
func (f *FieldInfo) Name() string {
	return f.name
}

// DeclaringClass returns the class which declared the field.
func (f *FieldInfo) DeclaringClass() *ClassInfo {
	return f.owner
}

// Type returns the declared type of the field. This may be an array, a
// primitive, or a parameterized type.
func (f *FieldInfo) Type() TypeRef {
	return f.typ
}

// Flags returns the access flags of the field.
func (f *FieldInfo) Flags() Flags {
	return f.flags
}

// IsEnumConstant returns whether this field is declared as an element of an
// enum.
func (f *FieldInfo) IsEnumConstant() bool {
	return f.flags&FlagEnum != 0
}

// IsSynthetic returns whether this field is a compiler-synthesized field.
func (f *FieldInfo) IsSynthetic() bool {
	return f.flags.IsSynthetic()
}

// Annotations returns the annotation instances declared on this field. It
// may be empty, but never nil.
func (f *FieldInfo) Annotations() []*AnnotationInstance {
	if f.annotations == nil {
		return []*AnnotationInstance{}
	}
	return f.annotations
}

// Annotation retrieves an annotation instance declared on this field by the
// name of the annotation type.
func (f *FieldInfo) Annotation(name Name) (*AnnotationInstance, bool) {
	return lookupAnnotation(f.annotations, name)
}

// HasAnnotation returns whether an annotation instance with the given name
// occurs on this field.
func (f *FieldInfo) HasAnnotation(name Name) bool {
	_, ok := f.Annotation(name)
	return ok
}

// AnnotationsWithRepeatable retrieves annotation instances declared on this
// field by the name of the annotation type. If the annotation type is
// repeatable and only its container is attached, the container's values are
// returned in stored order.
func (f *FieldInfo) AnnotationsWithRepeatable(name Name, view View) ([]*AnnotationInstance, error) {
	return annotationsWithRepeatable(f, name, view)
}

// Equal reports structural equality: the declaring classes are equal and the
// field identity (name, type, flags, annotation set) matches.
func (f *FieldInfo) Equal(o *FieldInfo) bool {
	if f == o {
		return true
	}
	if f == nil || o == nil {
		return false
	}
	if !f.owner.Equal(o.owner) {
		return false
	}
	if f.name != o.name || f.flags != o.flags || !f.typ.Equal(o.typ) {
		return false
	}
	if len(f.annotations) != len(o.annotations) {
		return false
	}
	for i := range f.annotations {
		if !f.annotations[i].Equal(o.annotations[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal: equal records produce equal
// hashes.
func (f *FieldInfo) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(f.owner.name))
	h.Write([]byte{0})
	h.Write([]byte(f.name))
	h.Write([]byte{0})
	h.Write([]byte(f.typ.String()))
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(f.flags))
	h.Write(buf[:])
	return h.Sum64()
}

// String returns a source-like description of the field, e.g.
// "private final java.lang.String com.example.User.name".
func (f *FieldInfo) String() string {
	var b strings.Builder
	if mods := f.flags.modifiers(); mods != "" {
		b.WriteString(mods)
		b.WriteByte(' ')
	}
	if !f.typ.IsZero() {
		b.WriteString(f.typ.String())
		b.WriteByte(' ')
	}
	b.WriteString(f.owner.name.String())
	b.WriteByte('.')
	b.WriteString(f.name)
	return b.String()
}

// Kind returns KindField.
func (f *FieldInfo) Kind() Kind {
	return KindField
}

// AsClass fails; a field is not a class.
func (f *FieldInfo) AsClass() (*ClassInfo, error) {
	return nil, wrongKind(KindField, KindClass)
}

// AsField returns this field.
func (f *FieldInfo) AsField() (*FieldInfo, error) {
	return f, nil
}

// AsMethod fails; a field is not a method.
func (f *FieldInfo) AsMethod() (*MethodInfo, error) {
	return nil, wrongKind(KindField, KindMethod)
}

// AsMethodParameter fails; a field is not a method parameter.
func (f *FieldInfo) AsMethodParameter() (*MethodParameterInfo, error) {
	return nil, wrongKind(KindField, KindMethodParameter)
}

// AsType fails; a field is not a type use.
func (f *FieldInfo) AsType() (*TypeTarget, error) {
	return nil, wrongKind(KindField, KindType)
}

// AsRecordComponent fails; a field is not a record component.
func (f *FieldInfo) AsRecordComponent() (*RecordComponentInfo, error) {
	return nil, wrongKind(KindField, KindRecordComponent)
}

// setType replaces the declared type during two-phase population, once
// cross-references resolve.
func (f *FieldInfo) setType(typ TypeRef) {
	f.typ = typ
}

// setAnnotations replaces the annotation set during two-phase population.
func (f *FieldInfo) setAnnotations(annotations []*AnnotationInstance) {
	f.annotations = annotations
}
