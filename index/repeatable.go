package index

import "fmt"

// RepeatableName is the name of the meta-annotation marking an annotation
// type as repeatable. Its class-valued "value" member names the container
// annotation whose array-valued "value" member holds the repeated instances.
const RepeatableName Name = "java.lang.annotation.Repeatable"

// valueMember is the designated member holding both the container type on
// the meta-annotation and the repeated instances on the container.
const valueMember = "value"

// annotated is the direct-lookup capability shared by every target variant
// that supports repeatable expansion.
type annotated interface {
	Annotation(name Name) (*AnnotationInstance, bool)
}

// annotationsWithRepeatable resolves the logical list of occurrences of the
// named annotation type on a target.
//
// A directly attached instance is authoritative and short-circuits the
// container lookup: under the language rules a target cannot carry both the
// bare repeatable annotation and its container for the same logical type, and
// when both appear anyway the direct form wins by policy. Otherwise the
// catalog decides whether the type is repeatable; a missing catalog entry or
// a non-annotation entry is a caller contract violation, while an absent
// meta-annotation or container is simply "not annotated".
func annotationsWithRepeatable(target annotated, name Name, view View) ([]*AnnotationInstance, error) {
	if direct, ok := target.Annotation(name); ok {
		return []*AnnotationInstance{direct}, nil
	}

	annotationClass, ok := view.ClassByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotIndexed, name)
	}
	if !annotationClass.IsAnnotationType() {
		return nil, fmt.Errorf("%w: %s", ErrNotAnnotation, name)
	}

	repeatable, ok := annotationClass.Annotation(RepeatableName)
	if !ok {
		// Not repeatable, not directly present: not annotated.
		return []*AnnotationInstance{}, nil
	}

	containerValue, ok := repeatable.Value(valueMember)
	if !ok {
		return nil, fmt.Errorf("%w: @%s on %s has no %s member",
			ErrWrongValueKind, RepeatableName.Local(), name, valueMember)
	}
	containerType, err := containerValue.AsClass()
	if err != nil {
		return nil, fmt.Errorf("container type of %s: %w", name, err)
	}

	container, ok := target.Annotation(containerType.Name())
	if !ok {
		// Repeatable, but no container attached: not annotated.
		return []*AnnotationInstance{}, nil
	}

	values, ok := container.Value(valueMember)
	if !ok {
		return nil, fmt.Errorf("%w: container @%s has no %s member",
			ErrWrongValueKind, containerType.Name(), valueMember)
	}
	instances, err := values.AsNestedArray()
	if err != nil {
		return nil, fmt.Errorf("container @%s: %w", containerType.Name(), err)
	}
	return instances, nil
}
