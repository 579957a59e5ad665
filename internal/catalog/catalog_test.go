package catalog

import (
	"testing"

	"github.com/SscSPs/smart_converter/pkg/units"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NoError(t, c.Validate(units.Default()))

	var labels []string
	for _, cat := range c.Categories() {
		labels = append(labels, cat.Label)
	}
	want := []string{"Length", "Mass", "Time", "Temperature", "Pressure", "Area", "Energy", "Speed", "Volume"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("category order mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"USD", "EUR", "INR", "PKR", "BDT", "CNY"}, c.Currencies()); diff != "" {
		t.Errorf("currencies mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryLookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	length, ok := c.Category("length")
	require.True(t, ok)
	assert.Equal(t, []string{"meter", "kilometer", "mile", "foot", "inch"}, length.Units)
	assert.Equal(t, "📏 Length", length.Display())
	assert.True(t, length.HasUnit("mile"))
	assert.False(t, length.HasUnit("gram"))

	byDisplay, ok := c.Category("📏 Length")
	require.True(t, ok)
	assert.Equal(t, length.Label, byDisplay.Label)

	_, ok = c.Category("Luminosity")
	assert.False(t, ok)

	assert.True(t, c.HasCurrency("pkr"))
	assert.False(t, c.HasCurrency("JPY"))
}

func TestCategoriesReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	cats := c.Categories()
	cats[0].Label = "changed"
	assert.Equal(t, "Length", c.Categories()[0].Label)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("categories: []"))
	assert.Error(t, err)

	_, err = Parse([]byte("categories:\n  - label: A\n    units: [meter]\n  - label: a\n    units: [meter]\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Parse([]byte("categories: {"))
	assert.ErrorContains(t, err, "failed to decode catalog")
}

func TestValidateAggregatesProblems(t *testing.T) {
	c, err := Parse([]byte(`
categories:
  - label: Mixed
    units: [meter, second, warp]
  - label: Empty
    units: []
currencies: [USDX]
`))
	require.NoError(t, err)

	err = c.Validate(units.Default())
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "4 errors occurred")
	assert.Contains(t, msg, "different dimensions")
	assert.Contains(t, msg, "'warp' is not defined in the unit registry")
	assert.Contains(t, msg, `category "Empty" has no units`)
	assert.Contains(t, msg, `currency code "USDX" must be 3 letters`)
}
