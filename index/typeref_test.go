package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeRefString(t *testing.T) {
	tests := []struct {
		name string
		typ  TypeRef
		want string
	}{
		{"primitive", PrimitiveType("int"), "int"},
		{"class", ClassType("java.lang.String"), "java.lang.String"},
		{"array", ArrayType(ClassType("java.lang.String")), "java.lang.String[]"},
		{"nested array", ArrayType(ArrayType(PrimitiveType("byte"))), "byte[][]"},
		{
			"parameterized",
			ParameterizedType("java.util.Map", ClassType("java.lang.String"), ClassType("java.lang.Integer")),
			"java.util.Map<java.lang.String, java.lang.Integer>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestTypeRefEqual(t *testing.T) {
	list := ParameterizedType("java.util.List", ClassType("java.lang.String"))

	assert.True(t, list.Equal(ParameterizedType("java.util.List", ClassType("java.lang.String"))))
	assert.False(t, list.Equal(ParameterizedType("java.util.List", ClassType("java.lang.Integer"))))
	assert.False(t, list.Equal(ClassType("java.util.List")))
	assert.True(t, ArrayType(PrimitiveType("int")).Equal(ArrayType(PrimitiveType("int"))))
	assert.False(t, ArrayType(PrimitiveType("int")).Equal(ArrayType(PrimitiveType("long"))))
	assert.True(t, TypeRef{}.Equal(TypeRef{}))
}

func TestTypeRefAccessors(t *testing.T) {
	arr := ArrayType(ClassType("java.lang.String"))
	component, ok := arr.Component()
	assert.True(t, ok)
	assert.Equal(t, Name("java.lang.String"), component.Name())

	_, ok = ClassType("java.lang.String").Component()
	assert.False(t, ok)

	assert.True(t, TypeRef{}.IsZero())
	assert.False(t, ClassType("java.lang.String").IsZero())
}

func TestNameHelpers(t *testing.T) {
	n := Name("java.lang.annotation.Repeatable")
	assert.Equal(t, "Repeatable", n.Local())
	assert.Equal(t, "java.lang.annotation", n.Package())

	unqualified := Name("Tag")
	assert.Equal(t, "Tag", unqualified.Local())
	assert.Equal(t, "", unqualified.Package())
}
