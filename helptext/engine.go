package helptext

import (
	"fmt"
	"io"

	"github.com/valyala/fasttemplate"
)

// Engine substitutes placeholders in help-text templates.
// The zero Engine uses the default double-brace delimiters.
type Engine struct {
	StartTag string
	EndTag   string
}

// UnknownPlaceholderError reports a placeholder that has no
// entry in the variable map during a strict render.
type UnknownPlaceholderError struct {
	// Name is the placeholder name as written between the
	// start and end tags.
	Name string
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown placeholder %q", e.Name)
}

// Render substitutes placeholders in tpl using vars and
// returns the rendered text. Ordinary text is copied through
// verbatim, in a single pass: substituted values are never
// re-scanned for placeholders. A template without
// placeholders is returned unchanged.
//
// A placeholder whose name is absent from vars is handled
// according to strict:
//   - strict: the render fails with *UnknownPlaceholderError
//     and no partial output is returned;
//   - non-strict: the marker is emitted unchanged, so a later
//     pass (or the reader) still sees it.
//
// A non-strict render cannot fail. Unused vars entries are
// ignored. An unclosed marker is copied through verbatim.
func (en *Engine) Render(
	tpl string,
	vars map[string]string,
	strict bool,
) (string, error) {
	startTag, endTag := en.tags()

	return fasttemplate.ExecuteFuncStringWithErr(
		tpl, startTag, endTag,
		func(w io.Writer, tag string) (int, error) {
			if val, ok := vars[tag]; ok {
				return io.WriteString(w, val)
			}

			if strict {
				return 0, &UnknownPlaceholderError{Name: tag}
			}

			// Pass through: rebuild the marker byte for byte.
			return io.WriteString(w, startTag+tag+endTag)
		},
	)
}

// tags returns the configured start/end tags, falling
// back to double-brace defaults.
func (en *Engine) tags() (string, string) {
	startTag := en.StartTag
	if startTag == "" {
		startTag = "{{"
	}

	endTag := en.EndTag
	if endTag == "" {
		endTag = "}}"
	}

	return startTag, endTag
}

// Render substitutes placeholders in tpl using vars with the
// default "{{" and "}}" delimiters. See Engine.Render for the
// strict-mode contract.
func Render(
	tpl string,
	vars map[string]string,
	strict bool,
) (string, error) {
	var en Engine

	return en.Render(tpl, vars, strict)
}
