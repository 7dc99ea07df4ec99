package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionLabel(t *testing.T) {
	label, ok := Text("apple").Label()
	assert.True(t, ok)
	assert.Equal(t, "apple", label)

	label, ok = Record(map[string]string{"label": "Pear", "color": "green"}).Label()
	assert.True(t, ok)
	assert.Equal(t, "Pear", label)

	_, ok = Record(map[string]string{"color": "green"}).Label()
	assert.False(t, ok, "record without label has no usable label")

	_, ok = Record(map[string]string{"label": ""}).Label()
	assert.False(t, ok, "empty label is not usable")
}

func TestRecordIsImmutable(t *testing.T) {
	fields := map[string]string{"label": "Bee", "color": "blue"}
	opt := Record(fields)
	fields["label"] = "Wasp"

	label, _ := opt.Label()
	assert.Equal(t, "Bee", label)
}

func TestRecordFieldsOrder(t *testing.T) {
	opt := Record(map[string]string{"size": "small", "label": "Apple", "color": "red"})

	assert.Equal(t, []Field{
		{Key: "label", Value: "Apple"},
		{Key: "color", Value: "red"},
		{Key: "size", Value: "small"},
	}, opt.Fields())
	assert.Nil(t, Text("apple").Fields())
}

func TestOptionEqual(t *testing.T) {
	assert.True(t, Text("pie").Equal(Text("pie")))
	assert.False(t, Text("pie").Equal(Text("pear")))

	a := Record(map[string]string{"label": "Pie", "color": "brown"})
	b := Record(map[string]string{"label": "Pie", "color": "brown"})
	c := Record(map[string]string{"label": "Pie", "color": "red"})
	assert.True(t, a.Equal(b), "structurally identical records are equal")
	assert.False(t, a.Equal(c))
	assert.False(t, Text("Pie").Equal(a))
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "apple", Text("apple").String())
	assert.Equal(t, "{color: red, size: small}", Record(map[string]string{"color": "red", "size": "small"}).String())
}

func TestValidateOptions(t *testing.T) {
	require.NoError(t, ValidateOptions(nil))
	require.NoError(t, ValidateOptions(Texts("a", "b")))

	err := ValidateOptions([]Option{Text("a"), Record(map[string]string{"label": "b"})})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "option 1 is a record option")
}

func TestValueSingle(t *testing.T) {
	v := Value{Options: Texts("pear")}
	opt, ok := v.Single()
	require.True(t, ok)
	assert.Equal(t, "pear", opt.String())

	_, ok = Value{Multiple: true, Options: Texts("pear")}.Single()
	assert.False(t, ok)
	assert.True(t, Value{}.Empty())
	assert.Equal(t, []string{"bee", "pie"}, Value{Multiple: true, Options: Texts("bee", "pie")}.Labels())
}
