package stylesheet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csskit/selector"
	"github.com/katalvlaran/csskit/stylesheet"
)

// TestRule_DeterministicOrder verifies declarations render sorted by
// property name regardless of the order Set was called in.
func TestRule_DeterministicOrder(t *testing.T) {
	var sheet stylesheet.Stylesheet
	sheet.Add(stylesheet.NewRule(stylesheet.Raw("body")).
		Set("margin", "0").
		Set("color", "#222").
		Set("background", "white"))

	want := "body {\n" +
		"  background: white;\n" +
		"  color: #222;\n" +
		"  margin: 0;\n" +
		"}\n"
	assert.Equal(t, want, sheet.String(), "declarations must be sorted by property")
}

// TestRule_SetUpserts confirms Set keeps one value per property.
func TestRule_SetUpserts(t *testing.T) {
	rule := stylesheet.NewRule(stylesheet.Raw("p")).
		Set("color", "red").
		Set("color", "blue")

	require.Len(t, rule.Decls, 1, "Set must replace, not append")
	assert.Equal(t, "blue", rule.Decls[0].Value, "last Set wins")
}

// TestStylesheet_BuilderSelectors renders rules whose selectors come from
// the selector package, with a blank line between rules and none after the
// last.
func TestStylesheet_BuilderSelectors(t *testing.T) {
	var sheet stylesheet.Stylesheet
	sheet.Add(
		stylesheet.NewRule(selector.ID("main").Class("container")).Set("margin", "0 auto"),
		stylesheet.NewRule(selector.Combine(selector.Element("h1"), selector.Adjacent, selector.Element("p"))).
			Set("margin-top", "0"),
	)

	want := "#main.container {\n" +
		"  margin: 0 auto;\n" +
		"}\n" +
		"\n" +
		"h1 + p {\n" +
		"  margin-top: 0;\n" +
		"}\n"
	assert.Equal(t, want, sheet.String(), "stylesheet rendering mismatch")
}

// TestStylesheet_WriteTo checks the io.WriterTo contract: the returned count
// matches the bytes written.
func TestStylesheet_WriteTo(t *testing.T) {
	var sheet stylesheet.Stylesheet
	sheet.Add(stylesheet.NewRule(stylesheet.Raw("em")).Set("font-style", "italic"))

	var sb strings.Builder
	n, err := sheet.WriteTo(&sb)
	require.NoError(t, err, "WriteTo on a valid sheet must not error")
	assert.Equal(t, int64(sb.Len()), n, "WriteTo count must match bytes written")
}

// TestStylesheet_NilSelector asserts ErrNilSelector surfaces from WriteTo and
// that rules before the offending one are still written.
func TestStylesheet_NilSelector(t *testing.T) {
	var sheet stylesheet.Stylesheet
	sheet.Add(
		stylesheet.NewRule(stylesheet.Raw("a")).Set("color", "teal"),
		&stylesheet.Rule{}, // no selector
	)

	var sb strings.Builder
	_, err := sheet.WriteTo(&sb)
	assert.ErrorIs(t, err, stylesheet.ErrNilSelector, "missing selector must abort the write")
	assert.Contains(t, sb.String(), "a {", "rules before the offending one stay written")
}

// TestStylesheet_Empty renders the zero value as empty text.
func TestStylesheet_Empty(t *testing.T) {
	var sheet stylesheet.Stylesheet
	assert.Empty(t, sheet.String(), "empty sheet renders no text")
}

// TestRule_EmptyDecls renders a rule with no declarations as an empty block.
func TestRule_EmptyDecls(t *testing.T) {
	var sheet stylesheet.Stylesheet
	sheet.Add(stylesheet.NewRule(stylesheet.Raw("hr")))
	assert.Equal(t, "hr {\n}\n", sheet.String(), "empty declaration block")
}
