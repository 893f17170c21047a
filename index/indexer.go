package index

import (
	"fmt"

	"github.com/google/uuid"
)

// Indexer assembles an Index through two-phase population: declaration
// shells are allocated first, then types and annotation sets are backfilled
// once cross-references resolve. Complete freezes the result; every mutating
// operation fails afterwards.
//
// An Indexer is owned by a single producer (typically a class description
// reader) and is not safe for concurrent use. The Index it produces is.
type Indexer struct {
	completed bool
	order     []Name
	classes   map[Name]*ClassInfo
}

// NewIndexer creates an empty indexer.
func NewIndexer() *Indexer {
	return &Indexer{
		classes: make(map[Name]*ClassInfo),
	}
}

// AddClass allocates a class record shell. The name must be unique within
// the index.
func (b *Indexer) AddClass(name Name, flags Flags) (*ClassInfo, error) {
	if b.completed {
		return nil, ErrCompleted
	}
	if _, exists := b.classes[name]; exists {
		return nil, fmt.Errorf("%w: class %s already indexed", ErrInvalidArgument, name)
	}
	c, err := NewClass(name, flags)
	if err != nil {
		return nil, err
	}
	b.classes[name] = c
	b.order = append(b.order, name)
	return c, nil
}

// AddField allocates a field record shell on the given class. The type may
// be the zero descriptor and backfilled later through SetFieldType.
func (b *Indexer) AddField(owner *ClassInfo, name string, typ TypeRef, flags Flags) (*FieldInfo, error) {
	if b.completed {
		return nil, ErrCompleted
	}
	f, err := NewField(owner, name, typ, flags)
	if err != nil {
		return nil, err
	}
	owner.fields = append(owner.fields, f)
	return f, nil
}

// AddMethod allocates a method record shell on the given class.
func (b *Indexer) AddMethod(owner *ClassInfo, name string, returns TypeRef, flags Flags) (*MethodInfo, error) {
	if b.completed {
		return nil, ErrCompleted
	}
	m, err := NewMethod(owner, name, returns, flags)
	if err != nil {
		return nil, err
	}
	owner.methods = append(owner.methods, m)
	return m, nil
}

// AddMethodParameter allocates a parameter record on the given method.
func (b *Indexer) AddMethodParameter(method *MethodInfo, name string, typ TypeRef) (*MethodParameterInfo, error) {
	if b.completed {
		return nil, ErrCompleted
	}
	p, err := NewMethodParameter(method, len(method.parameters), name, typ)
	if err != nil {
		return nil, err
	}
	method.parameters = append(method.parameters, p)
	return p, nil
}

// AddRecordComponent allocates a record component on the given class.
func (b *Indexer) AddRecordComponent(owner *ClassInfo, name string, typ TypeRef) (*RecordComponentInfo, error) {
	if b.completed {
		return nil, ErrCompleted
	}
	r, err := NewRecordComponent(owner, name, typ)
	if err != nil {
		return nil, err
	}
	owner.components = append(owner.components, r)
	return r, nil
}

// SetFieldType backfills the declared type of a field once its
// cross-references resolve.
func (b *Indexer) SetFieldType(f *FieldInfo, typ TypeRef) error {
	if b.completed {
		return ErrCompleted
	}
	f.setType(typ)
	return nil
}

// SetMethodReturnType backfills the return type of a method.
func (b *Indexer) SetMethodReturnType(m *MethodInfo, returns TypeRef) error {
	if b.completed {
		return ErrCompleted
	}
	m.setReturnType(returns)
	return nil
}

// SetClassAnnotations replaces the annotation set of a class and binds each
// instance to it.
func (b *Indexer) SetClassAnnotations(c *ClassInfo, annotations []*AnnotationInstance) error {
	if b.completed {
		return ErrCompleted
	}
	bindTarget(annotations, c)
	c.setAnnotations(annotations)
	return nil
}

// SetFieldAnnotations replaces the annotation set of a field and binds each
// instance to it.
func (b *Indexer) SetFieldAnnotations(f *FieldInfo, annotations []*AnnotationInstance) error {
	if b.completed {
		return ErrCompleted
	}
	bindTarget(annotations, f)
	f.setAnnotations(annotations)
	return nil
}

// SetMethodAnnotations replaces the annotation set of a method and binds
// each instance to it.
func (b *Indexer) SetMethodAnnotations(m *MethodInfo, annotations []*AnnotationInstance) error {
	if b.completed {
		return ErrCompleted
	}
	bindTarget(annotations, m)
	m.setAnnotations(annotations)
	return nil
}

// SetParameterAnnotations replaces the annotation set of a method parameter
// and binds each instance to it.
func (b *Indexer) SetParameterAnnotations(p *MethodParameterInfo, annotations []*AnnotationInstance) error {
	if b.completed {
		return ErrCompleted
	}
	bindTarget(annotations, p)
	p.setAnnotations(annotations)
	return nil
}

// SetRecordComponentAnnotations replaces the annotation set of a record
// component and binds each instance to it.
func (b *Indexer) SetRecordComponentAnnotations(r *RecordComponentInfo, annotations []*AnnotationInstance) error {
	if b.completed {
		return ErrCompleted
	}
	bindTarget(annotations, r)
	r.setAnnotations(annotations)
	return nil
}

// Complete freezes the indexer and returns the finished Index with its
// annotation usage index built and a unique build ID stamped. The records
// reachable from the Index must not be mutated afterwards; publishing the
// Index to other goroutines is safe once Complete returns.
func (b *Indexer) Complete() (*Index, error) {
	if b.completed {
		return nil, ErrCompleted
	}
	b.completed = true

	ix := &Index{
		id:      uuid.NewString(),
		order:   b.order,
		classes: b.classes,
		usage:   make(map[Name][]*AnnotationInstance),
	}
	for _, name := range b.order {
		c := b.classes[name]
		ix.recordUsage(c.annotations)
		for _, f := range c.fields {
			ix.recordUsage(f.annotations)
		}
		for _, m := range c.methods {
			ix.recordUsage(m.annotations)
			for _, p := range m.parameters {
				ix.recordUsage(p.annotations)
			}
		}
		for _, r := range c.components {
			ix.recordUsage(r.annotations)
		}
	}
	return ix, nil
}

func (ix *Index) recordUsage(annotations []*AnnotationInstance) {
	for _, a := range annotations {
		ix.usage[a.name] = append(ix.usage[a.name], a)
	}
}

func bindTarget(annotations []*AnnotationInstance, target AnnotationTarget) {
	for _, a := range annotations {
		a.target = target
	}
}
