package index

import "fmt"

// Kind represents the kind of an annotation target
type Kind int

const (
	// KindClass is a class, interface, enum, or annotation declaration
	KindClass Kind = iota
	// KindField is a field declaration
	KindField
	// KindMethod is a method or constructor declaration
	KindMethod
	// KindMethodParameter is a formal parameter of a method
	KindMethodParameter
	// KindType is a type use inside another declaration
	KindType
	// KindRecordComponent is a component of a record declaration
	KindRecordComponent
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindField:
		return "field"
	case KindMethod:
		return "method"
	case KindMethodParameter:
		return "method parameter"
	case KindType:
		return "type"
	case KindRecordComponent:
		return "record component"
	}
	return "unknown"
}

// AnnotationTarget is the closed family of declarations an annotation can be
// attached to. Each narrowing accessor succeeds only on its own variant and
// returns ErrWrongTargetKind otherwise.
type AnnotationTarget interface {
	// Kind returns the variant of this target.
	Kind() Kind

	// AsClass narrows the target to a class declaration.
	AsClass() (*ClassInfo, error)
	// AsField narrows the target to a field declaration.
	AsField() (*FieldInfo, error)
	// AsMethod narrows the target to a method declaration.
	AsMethod() (*MethodInfo, error)
	// AsMethodParameter narrows the target to a method parameter.
	AsMethodParameter() (*MethodParameterInfo, error)
	// AsType narrows the target to a type use.
	AsType() (*TypeTarget, error)
	// AsRecordComponent narrows the target to a record component.
	AsRecordComponent() (*RecordComponentInfo, error)
}

// wrongKind builds the narrowing failure for a target of kind got asked to
// narrow to want.
func wrongKind(got Kind, want Kind) error {
	return fmt.Errorf("%w: %s is not a %s", ErrWrongTargetKind, got, want)
}
