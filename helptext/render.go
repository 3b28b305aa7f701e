package helptext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// OutDirEnv is the environment variable, set by the host
// build, that names the build output directory.
const OutDirEnv = "OUT_DIR"

// ErrMissingOutDir reports that OutDirEnv is unset or empty.
// There is no fallback: rendering without a build output
// directory is a configuration error of the host build.
var ErrMissingOutDir = errors.New(
	"build output directory $" + OutDirEnv + " is not set",
)

// RenderFile reads the template at templatePath, substitutes
// placeholders from vars, and writes the result to
// $OUT_DIR/<binaryName>. The destination file is created or
// truncated, never appended to.
//
// The render is always strict: help text must never ship with
// a literal unresolved marker. On failure nothing is written.
func (en *Engine) RenderFile(
	binaryName string,
	templatePath string,
	vars map[string]string,
) error {
	const errCtx = "rendering help text"

	if err := en.renderToFile(
		binaryName, templatePath, vars,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// RenderDir renders every entry of dir the way RenderFile
// does, writing each result to $OUT_DIR/<binaryName>-<entry>.
// The listing is not recursive, and subdirectory entries are
// not treated specially: reading one as a template fails and
// aborts the run.
//
// The first failing entry aborts the whole operation; outputs
// already written for earlier entries are left in place.
// Callers should rely only on the completed set of outputs,
// not on the processing order.
func (en *Engine) RenderDir(
	binaryName string,
	dir string,
	vars map[string]string,
) error {
	const errCtx = "rendering help directory"

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	for _, entry := range entries {
		err := en.renderToFile(
			OutputName(binaryName, entry.Name()),
			filepath.Join(dir, entry.Name()),
			vars,
		)
		if err != nil {
			return fmt.Errorf(
				"%s: entry %s: %w",
				errCtx, entry.Name(), err,
			)
		}
	}

	return nil
}

// OutputName derives the output file name RenderDir uses for
// one directory entry.
func OutputName(binaryName string, entryName string) string {
	return binaryName + "-" + entryName
}

// renderToFile runs the shared sequence for one template:
// read, render strictly, resolve the output directory, and
// write the destination file. Each step is a distinct failure
// point, reported in that order.
func (en *Engine) renderToFile(
	dstName string,
	templatePath string,
	vars map[string]string,
) error {
	tpl, err := os.ReadFile(templatePath) //nolint:gosec // template paths are caller-provided
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	rendered, err := en.Render(string(tpl), vars, true)
	if err != nil {
		return err
	}

	outDir, err := outputDir()
	if err != nil {
		return err
	}

	dst := filepath.Join(outDir, dstName)

	//nolint:gosec // build outputs are world-readable
	if err := os.WriteFile(
		dst, []byte(rendered), 0o666,
	); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// outputDir resolves the build output directory from the
// environment. An empty value counts as unset.
func outputDir() (string, error) {
	outDir := os.Getenv(OutDirEnv)
	if outDir == "" {
		return "", ErrMissingOutDir
	}

	return outDir, nil
}

// RenderFile renders one template with the default delimiters.
// See Engine.RenderFile.
func RenderFile(
	binaryName string,
	templatePath string,
	vars map[string]string,
) error {
	var en Engine

	return en.RenderFile(binaryName, templatePath, vars)
}

// RenderDir renders a directory of templates with the default
// delimiters. See Engine.RenderDir.
func RenderDir(
	binaryName string,
	dir string,
	vars map[string]string,
) error {
	var en Engine

	return en.RenderDir(binaryName, dir, vars)
}
