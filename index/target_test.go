package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTargets constructs one target of every variant.
func buildTargets(t *testing.T) (cls *ClassInfo, field *FieldInfo, method *MethodInfo, param *MethodParameterInfo, typeUse *TypeTarget, component *RecordComponentInfo) {
	t.Helper()

	cls = newTestClass(t, "com.example.Point", FlagPublic)

	var err error
	field, err = NewField(cls, "x", PrimitiveType("int"), FlagPrivate|FlagFinal)
	require.NoError(t, err)

	method, err = NewMethod(cls, "translate", ClassType("com.example.Point"), FlagPublic)
	require.NoError(t, err)

	param, err = NewMethodParameter(method, 0, "dx", PrimitiveType("int"))
	require.NoError(t, err)

	typeUse, err = NewTypeTarget(field, PrimitiveType("int"))
	require.NoError(t, err)

	component, err = NewRecordComponent(cls, "x", PrimitiveType("int"))
	require.NoError(t, err)
	return
}

func TestTargetKinds(t *testing.T) {
	cls, field, method, param, typeUse, component := buildTargets(t)

	assert.Equal(t, KindClass, cls.Kind())
	assert.Equal(t, KindField, field.Kind())
	assert.Equal(t, KindMethod, method.Kind())
	assert.Equal(t, KindMethodParameter, param.Kind())
	assert.Equal(t, KindType, typeUse.Kind())
	assert.Equal(t, KindRecordComponent, component.Kind())
}

// Every narrowing accessor succeeds on its own variant and fails with
// ErrWrongTargetKind on all others.
func TestTargetNarrowing(t *testing.T) {
	cls, field, method, param, typeUse, component := buildTargets(t)
	targets := []AnnotationTarget{cls, field, method, param, typeUse, component}

	for _, target := range targets {
		target := target
		t.Run(target.Kind().String(), func(t *testing.T) {
			gotClass, err := target.AsClass()
			if target.Kind() == KindClass {
				require.NoError(t, err)
				assert.Same(t, cls, gotClass)
			} else {
				assert.True(t, IsWrongTargetKind(err))
			}

			gotField, err := target.AsField()
			if target.Kind() == KindField {
				require.NoError(t, err)
				assert.Same(t, field, gotField)
			} else {
				assert.True(t, IsWrongTargetKind(err))
			}

			gotMethod, err := target.AsMethod()
			if target.Kind() == KindMethod {
				require.NoError(t, err)
				assert.Same(t, method, gotMethod)
			} else {
				assert.True(t, IsWrongTargetKind(err))
			}

			gotParam, err := target.AsMethodParameter()
			if target.Kind() == KindMethodParameter {
				require.NoError(t, err)
				assert.Same(t, param, gotParam)
			} else {
				assert.True(t, IsWrongTargetKind(err))
			}

			gotType, err := target.AsType()
			if target.Kind() == KindType {
				require.NoError(t, err)
				assert.Same(t, typeUse, gotType)
			} else {
				assert.True(t, IsWrongTargetKind(err))
			}

			gotComponent, err := target.AsRecordComponent()
			if target.Kind() == KindRecordComponent {
				require.NoError(t, err)
				assert.Same(t, component, gotComponent)
			} else {
				assert.True(t, IsWrongTargetKind(err))
			}
		})
	}
}

func TestWrongKindErrorMessage(t *testing.T) {
	_, field, _, _, _, _ := buildTargets(t)

	_, err := field.AsMethod()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field is not a method")
}
