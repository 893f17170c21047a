package index

import "errors"

// Common index error types
var (
	// ErrInvalidArgument is returned when a constructor or builder is given
	// an argument that violates its contract (nil owner, empty name, ...)
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotIndexed is returned when repeatable resolution is requested for
	// an annotation type the catalog has no record of
	ErrNotIndexed = errors.New("index does not contain the annotation definition")

	// ErrNotAnnotation is returned when a name resolved during repeatable
	// resolution does not refer to an annotation type
	ErrNotAnnotation = errors.New("not an annotation type")

	// ErrWrongTargetKind is returned when an annotation target is narrowed
	// to a variant it is not
	ErrWrongTargetKind = errors.New("wrong annotation target kind")

	// ErrWrongValueKind is returned when an annotation value is narrowed to
	// a kind it does not hold
	ErrWrongValueKind = errors.New("wrong annotation value kind")

	// ErrCompleted is returned when a mutating Indexer operation is invoked
	// after Complete has frozen the index
	ErrCompleted = errors.New("indexer already completed")
)

// IsNotIndexed returns true if the error is ErrNotIndexed
func IsNotIndexed(err error) bool {
	return errors.Is(err, ErrNotIndexed)
}

// IsNotAnnotation returns true if the error is ErrNotAnnotation
func IsNotAnnotation(err error) bool {
	return errors.Is(err, ErrNotAnnotation)
}

// IsWrongTargetKind returns true if the error is ErrWrongTargetKind
func IsWrongTargetKind(err error) bool {
	return errors.Is(err, ErrWrongTargetKind)
}

// IsWrongValueKind returns true if the error is ErrWrongValueKind
func IsWrongValueKind(err error) bool {
	return errors.Is(err, ErrWrongValueKind)
}
