package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexerLifecycle(t *testing.T) {
	ix := NewIndexer()

	user, err := ix.AddClass("com.example.User", FlagPublic)
	require.NoError(t, err)

	// Allocate a shell, then backfill type and annotations once
	// cross-references resolve.
	name, err := ix.AddField(user, "name", TypeRef{}, FlagPrivate)
	require.NoError(t, err)
	require.NoError(t, ix.SetFieldType(name, ClassType("java.lang.String")))
	tag := NewAnnotation("com.example.Tag")
	require.NoError(t, ix.SetFieldAnnotations(name, []*AnnotationInstance{tag}))

	idx, err := ix.Complete()
	require.NoError(t, err)
	require.NotNil(t, idx)
	assert.NotEmpty(t, idx.ID())

	got, ok := idx.ClassByName("com.example.User")
	require.True(t, ok)
	assert.Same(t, user, got)

	field, ok := got.Field("name")
	require.True(t, ok)
	assert.Equal(t, "java.lang.String", field.Type().String())
	assert.True(t, field.HasAnnotation("com.example.Tag"))

	// Attaching bound the instance to its target.
	target := tag.Target()
	require.NotNil(t, target)
	bound, err := target.AsField()
	require.NoError(t, err)
	assert.Same(t, field, bound)
}

func TestIndexerRejectsDuplicateClass(t *testing.T) {
	ix := NewIndexer()

	_, err := ix.AddClass("com.example.User", FlagPublic)
	require.NoError(t, err)
	_, err = ix.AddClass("com.example.User", FlagPublic)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIndexerFrozenAfterComplete(t *testing.T) {
	ix := NewIndexer()
	user, err := ix.AddClass("com.example.User", FlagPublic)
	require.NoError(t, err)
	field, err := ix.AddField(user, "name", ClassType("java.lang.String"), FlagPrivate)
	require.NoError(t, err)

	_, err = ix.Complete()
	require.NoError(t, err)

	_, err = ix.AddClass("com.example.Post", FlagPublic)
	assert.ErrorIs(t, err, ErrCompleted)
	_, err = ix.AddField(user, "email", ClassType("java.lang.String"), FlagPrivate)
	assert.ErrorIs(t, err, ErrCompleted)
	assert.ErrorIs(t, ix.SetFieldType(field, PrimitiveType("int")), ErrCompleted)
	assert.ErrorIs(t, ix.SetFieldAnnotations(field, nil), ErrCompleted)
	_, err = ix.Complete()
	assert.ErrorIs(t, err, ErrCompleted)
}

func TestIndexClasses_DeterministicOrder(t *testing.T) {
	ix := NewIndexer()
	for _, name := range []Name{"com.example.C", "com.example.A", "com.example.B"} {
		_, err := ix.AddClass(name, FlagPublic)
		require.NoError(t, err)
	}
	idx, err := ix.Complete()
	require.NoError(t, err)

	classes := idx.Classes()
	require.Len(t, classes, 3)
	assert.Equal(t, Name("com.example.C"), classes[0].Name())
	assert.Equal(t, Name("com.example.A"), classes[1].Name())
	assert.Equal(t, Name("com.example.B"), classes[2].Name())
}

func TestIndexAnnotations_UsageIndex(t *testing.T) {
	ix := NewIndexer()

	user, err := ix.AddClass("com.example.User", FlagPublic)
	require.NoError(t, err)
	onClass := NewAnnotation("com.example.Entity")
	require.NoError(t, ix.SetClassAnnotations(user, []*AnnotationInstance{onClass}))

	name, err := ix.AddField(user, "name", ClassType("java.lang.String"), FlagPrivate)
	require.NoError(t, err)
	onField := NewAnnotation("com.example.Column", StringValue("name", "user_name"))
	require.NoError(t, ix.SetFieldAnnotations(name, []*AnnotationInstance{onField}))

	m, err := ix.AddMethod(user, "rename", PrimitiveType("void"), FlagPublic)
	require.NoError(t, err)
	p, err := ix.AddMethodParameter(m, "newName", ClassType("java.lang.String"))
	require.NoError(t, err)
	onParam := NewAnnotation("com.example.Column")
	require.NoError(t, ix.SetParameterAnnotations(p, []*AnnotationInstance{onParam}))

	idx, err := ix.Complete()
	require.NoError(t, err)

	columns := idx.Annotations("com.example.Column")
	require.Len(t, columns, 2)
	assert.Same(t, onField, columns[0])
	assert.Same(t, onParam, columns[1])

	entities := idx.Annotations("com.example.Entity")
	require.Len(t, entities, 1)
	assert.Same(t, onClass, entities[0])

	missing := idx.Annotations("com.example.Unused")
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestIndexClassByName_Missing(t *testing.T) {
	ix := NewIndexer()
	idx, err := ix.Complete()
	require.NoError(t, err)

	_, ok := idx.ClassByName("com.example.Nope")
	assert.False(t, ok)
}

func TestIndexIDs_Unique(t *testing.T) {
	build := func() *Index {
		ix := NewIndexer()
		idx, err := ix.Complete()
		require.NoError(t, err)
		return idx
	}
	assert.NotEqual(t, build().ID(), build().ID())
}
