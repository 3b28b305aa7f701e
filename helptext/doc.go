// Package helptext renders help-text templates at build time. It substitutes
// {{name}} placeholders with values from a caller-supplied variable map using
// valyala/fasttemplate with configurable delimiters (default "{{" and "}}").
//
// The Engine type holds the delimiter configuration. Render performs pure
// in-memory substitution with a strict or pass-through policy for unresolved
// placeholders; RenderFile and RenderDir read template files and write
// rendered outputs into the build output directory named by $OUT_DIR, ready
// to be embedded into a binary's --help output.
package helptext
