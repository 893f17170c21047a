package index

// View is the read-only catalog contract consumed by annotation resolution
// and by tooling such as the introspection server.
type View interface {
	// ClassByName looks up a class record by its fully qualified name.
	ClassByName(name Name) (*ClassInfo, bool)

	// Classes returns all indexed class records in deterministic order.
	Classes() []*ClassInfo

	// Annotations returns every instance of the named annotation type
	// attached anywhere in the index, in indexing order.
	Annotations(name Name) []*AnnotationInstance
}

// Index is the frozen in-memory catalog produced by an Indexer. All lookups
// read pre-computed indexes over immutable records; no locking is needed and
// an Index can be shared between goroutines without synchronization.
type Index struct {
	id      string
	order   []Name
	classes map[Name]*ClassInfo
	usage   map[Name][]*AnnotationInstance
}

// ID returns the unique identifier stamped when the index was completed.
func (ix *Index) ID() string {
	return ix.id
}

// ClassByName looks up a class record by its fully qualified name.
func (ix *Index) ClassByName(name Name) (*ClassInfo, bool) {
	c, ok := ix.classes[name]
	return c, ok
}

// Classes returns all indexed class records in the order they were added.
func (ix *Index) Classes() []*ClassInfo {
	result := make([]*ClassInfo, len(ix.order))
	for i, name := range ix.order {
		result[i] = ix.classes[name]
	}
	return result
}

// Annotations returns every instance of the named annotation type attached
// anywhere in the index. The result may be empty, but never nil.
func (ix *Index) Annotations(name Name) []*AnnotationInstance {
	instances, ok := ix.usage[name]
	if !ok {
		return []*AnnotationInstance{}
	}
	// Copy to keep the frozen index immutable.
	result := make([]*AnnotationInstance, len(instances))
	copy(result, instances)
	return result
}
