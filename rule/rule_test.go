package rule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreatePropertyRule(t *testing.T) {
	props := map[string]interface{}{"color": "red", "size": 1}
	r, err := CreatePropertyRule("discount", props)
	require.Nil(t, err)
	require.Equal(t, "discount", r.Name())
	require.Equal(t, "red", r.ValueAt("color"))
	require.Equal(t, 1, r.ValueAt("size"))
	require.Nil(t, r.ValueAt("shape"))

	// the rule owns a copy of its properties
	props["color"] = "green"
	require.Equal(t, "red", r.ValueAt("color"))

	other, err := CreatePropertyRule("discount", nil)
	require.Nil(t, err)
	require.NotEqual(t, r.ID(), other.ID())
	require.Nil(t, other.ValueAt("color"))
}

func TestPropertyRuleSetValue(t *testing.T) {
	r, err := CreatePropertyRule("discount", map[string]interface{}{"color": "red"})
	require.Nil(t, err)

	r.SetValue("color", "green")
	require.Equal(t, "green", r.ValueAt("color"))

	r.SetValue("size", 3)
	require.Equal(t, 3, r.ValueAt("size"))
}

func TestPropertyRuleString(t *testing.T) {
	r, err := CreatePropertyRule("discount", nil)
	require.Nil(t, err)
	require.Contains(t, r.String(), "discount")
	require.Contains(t, r.String(), r.ID().String())
}

func TestCreateSignature(t *testing.T) {
	sig := CreateSignature("color", "size", "color")
	require.Equal(t, []string{"color", "size"}, sig.Dimensions())

	empty := CreateSignature()
	require.Empty(t, empty.Dimensions())
	require.NotNil(t, empty.Dimensions())

	// callers cannot alter the signature through the returned slice
	dims := sig.Dimensions()
	dims[0] = "shape"
	require.Equal(t, []string{"color", "size"}, sig.Dimensions())
}
