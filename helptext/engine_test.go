package helptext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/buildhelp/helptext"
)

func TestRender_no_placeholders_unchanged(t *testing.T) {
	t.Parallel()

	const tpl = "plain help text, no markers"

	for _, strict := range []bool{true, false} {
		got, err := helptext.Render(tpl, nil, strict)

		require.NoError(t, err)
		assert.Equal(t, tpl, got)
	}
}

func TestRender_empty_template(t *testing.T) {
	t.Parallel()

	got, err := helptext.Render(
		"", map[string]string{"k": "v"}, true,
	)

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRender_marker_only_template(t *testing.T) {
	t.Parallel()

	got, err := helptext.Render(
		"{{k}}", map[string]string{"k": "value"}, true,
	)

	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestRender_usage_line(t *testing.T) {
	t.Parallel()

	got, err := helptext.Render(
		"Usage: {{bin}} [OPTIONS]",
		map[string]string{"bin": "tool"},
		true,
	)

	require.NoError(t, err)
	assert.Equal(t, "Usage: tool [OPTIONS]", got)
}

func TestRender_strict_unknown_placeholder(t *testing.T) {
	t.Parallel()

	got, err := helptext.Render(
		"{{bin}} v{{ver}}",
		map[string]string{"bin": "tool"},
		true,
	)

	require.Error(t, err)
	assert.Empty(t, got)

	var unknown *helptext.UnknownPlaceholderError

	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ver", unknown.Name)
	assert.Contains(t, err.Error(), "unknown placeholder")
}

func TestRender_nonstrict_preserves_unknown(t *testing.T) {
	t.Parallel()

	got, err := helptext.Render(
		"{{bin}} v{{ver}}",
		map[string]string{"bin": "tool"},
		false,
	)

	require.NoError(t, err)
	assert.Equal(t, "tool v{{ver}}", got)
}

func TestRender_unused_keys_ignored(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"bin":    "tool",
		"unused": "never referenced",
		"extra":  "also unused",
	}

	got, err := helptext.Render(
		"Usage: {{bin}}", vars, true,
	)

	require.NoError(t, err)
	assert.Equal(t, "Usage: tool", got)
}

func TestRender_repeated_marker_same_value(t *testing.T) {
	t.Parallel()

	got, err := helptext.Render(
		"{{bin}} --help shows help for {{bin}}",
		map[string]string{"bin": "tool"},
		true,
	)

	require.NoError(t, err)
	assert.Equal(
		t,
		"tool --help shows help for tool",
		got,
	)
}

func TestRender_single_pass_no_reexpansion(t *testing.T) {
	t.Parallel()

	// A substituted value containing marker syntax is emitted
	// literally, never re-scanned.
	got, err := helptext.Render(
		"{{a}}",
		map[string]string{"a": "{{b}}", "b": "x"},
		true,
	)

	require.NoError(t, err)
	assert.Equal(t, "{{b}}", got)
}

func TestRender_unclosed_marker_copied(t *testing.T) {
	t.Parallel()

	const tpl = "before {{bin after"

	for _, strict := range []bool{true, false} {
		got, err := helptext.Render(
			tpl, map[string]string{"bin": "tool"}, strict,
		)

		require.NoError(t, err)
		assert.Equal(t, tpl, got)
	}
}

func TestRender_empty_name(t *testing.T) {
	t.Parallel()

	_, err := helptext.Render("{{}}", nil, true)

	var unknown *helptext.UnknownPlaceholderError

	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "", unknown.Name)

	got, err := helptext.Render("{{}}", nil, false)

	require.NoError(t, err)
	assert.Equal(t, "{{}}", got)
}

func TestRender_brackets_and_braces_literal(t *testing.T) {
	t.Parallel()

	// Ordinary help-text punctuation never collides with the
	// double-brace markers.
	const tpl = "Usage: tool [FLAGS] {a|b} (see --help)"

	got, err := helptext.Render(tpl, nil, true)

	require.NoError(t, err)
	assert.Equal(t, tpl, got)
}

func TestRender_custom_single_brace_tags(t *testing.T) {
	t.Parallel()

	en := helptext.Engine{
		StartTag: "{",
		EndTag:   "}",
	}

	got, err := en.Render(
		"a{b}c", map[string]string{"b": "B"}, true,
	)

	require.NoError(t, err)
	assert.Equal(t, "aBc", got)
}

func TestRender_custom_tags_strict_failure(t *testing.T) {
	t.Parallel()

	en := helptext.Engine{
		StartTag: "<%",
		EndTag:   "%>",
	}

	_, err := en.Render("hello <%name%>", nil, true)

	var unknown *helptext.UnknownPlaceholderError

	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "name", unknown.Name)
}

func TestRender_output_independent_of_map_size(t *testing.T) {
	t.Parallel()

	small := map[string]string{"bin": "tool"}

	large := map[string]string{
		"bin": "tool",
		"k1":  "v1",
		"k2":  "v2",
		"k3":  "v3",
	}

	tpl := "Usage: {{bin}} [OPTIONS]"

	fromSmall, err := helptext.Render(tpl, small, true)
	require.NoError(t, err)

	fromLarge, err := helptext.Render(tpl, large, true)
	require.NoError(t, err)

	assert.Equal(t, fromSmall, fromLarge)
}

func FuzzRender(f *testing.F) {
	f.Add("Usage: {{bin}} [OPTIONS]", "bin", "tool")
	f.Add("{{a}}{{b}}", "a", "x")
	f.Add("no markers here", "key", "val")
	f.Add("{{", "k", "v")
	f.Add("}}", "k", "v")
	f.Add("{{key}}", "key", "")
	f.Add("", "key", "val")
	f.Add("{{a{{b}}", "a", "nested")

	f.Fuzz(func(
		t *testing.T,
		tpl string,
		key string,
		val string,
	) {
		// Non-strict rendering against an empty map is the
		// identity function: every marker is rebuilt verbatim
		// and unclosed tails are copied through.
		got, err := helptext.Render(tpl, nil, false)

		require.NoError(t, err)
		assert.Equal(t, tpl, got)

		// Strict rendering may fail but must not panic.
		_, _ = helptext.Render( //nolint:errcheck // fuzz: error irrelevant
			tpl,
			map[string]string{key: val},
			true,
		)
	})
}
