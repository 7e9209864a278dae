package fbxdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectProperties_DirectWinsOverTemplate(t *testing.T) {
	direct := props70(propNode("A", "int", int32(1)))
	template := props70(
		propNode("A", "int", int32(2)),
		propNode("B", "int", int32(3)),
	)
	op := NewObjectProperties(direct, template)

	a, err := op.Int32("A")
	require.NoError(t, err)
	assert.Equal(t, int32(1), a, "direct value must shadow the template")

	b, err := op.Int32("B")
	require.NoError(t, err)
	assert.Equal(t, int32(3), b, "template must supply keys the direct scope lacks")

	_, err = op.Int32("C")
	require.ErrorIs(t, err, ErrPropertyNotFound)
	assert.Contains(t, err.Error(), `"C"`)
}

func TestObjectProperties_NilScopes(t *testing.T) {
	op := NewObjectProperties(nil, nil)
	assert.Nil(t, op.Get("anything"))
	_, err := op.Int32("anything")
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	onlyTemplate := NewObjectProperties(nil, props70(propNode("K", "int", int32(9))))
	v, err := onlyTemplate.Int32("K")
	require.NoError(t, err)
	assert.Equal(t, int32(9), v)
}

func TestObjectProperties_TypeMismatch(t *testing.T) {
	op := NewObjectProperties(props70(
		propNode("Count", "int", int32(5)),
		propNode("Label", "KString", "hello"),
	), nil)

	// Missing and wrong-type are distinct failures.
	_, err := op.Float64("Count")
	require.ErrorIs(t, err, ErrPropertyTypeMismatch)
	assert.NotErrorIs(t, err, ErrPropertyNotFound)
	assert.Contains(t, err.Error(), "int32")

	_, err = op.Int32("Label")
	require.ErrorIs(t, err, ErrPropertyTypeMismatch)

	s, err := op.StringValue("Label")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestObjectProperties_ValuelessProperty(t *testing.T) {
	op := NewObjectProperties(props70(propNode("Empty", "Compound")), nil)
	_, err := op.Int32("Empty")
	assert.ErrorIs(t, err, ErrPropertyTypeMismatch)
}

func TestProperty_Bool(t *testing.T) {
	op := NewObjectProperties(props70(
		propNode("AsInt", "bool", int32(1)),
		propNode("AsIntOff", "bool", int32(0)),
		propNode("AsBool", "bool", true),
		propNode("NotBool", "KString", "x"),
	), nil)

	v, err := op.Bool("AsInt")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = op.Bool("AsIntOff")
	require.NoError(t, err)
	assert.False(t, v)

	v, err = op.Bool("AsBool")
	require.NoError(t, err)
	assert.True(t, v)

	_, err = op.Bool("NotBool")
	assert.ErrorIs(t, err, ErrPropertyTypeMismatch)
}

func TestProperty_Metadata(t *testing.T) {
	op := NewObjectProperties(props70(propNode("UnitScaleFactor", "double", 100.0)), nil)
	p := op.Get("UnitScaleFactor")
	require.NotNil(t, p)
	assert.Equal(t, "UnitScaleFactor", p.Name())
	assert.Equal(t, "double", p.TypeName())
}

func TestObjectProperties_Idempotent(t *testing.T) {
	op := NewObjectProperties(props70(propNode("A", "int", int32(7))), nil)
	for i := 0; i < 3; i++ {
		v, err := op.Int32("A")
		require.NoError(t, err)
		assert.Equal(t, int32(7), v)
	}
}
