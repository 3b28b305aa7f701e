// Package vars assembles placeholder variable maps for help-text rendering.
// It parses explicit NAME=VALUE pairs, workspace status files ("KEY VALUE"
// per line, as written by Bazel's --workspace_status_command), and flat JSON
// or YAML variable files, and merges the results with left-to-right
// precedence.
package vars
