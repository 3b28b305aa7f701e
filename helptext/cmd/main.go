// Binary helptext renders help-text templates into the build
// output directory named by $OUT_DIR, so the host build can
// embed the result into a binary's --help output. It is meant
// to be invoked from a go:generate directive or a build
// script.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/byte4ever/buildhelp/helptext"
	"github.com/byte4ever/buildhelp/vars"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func run() error {
	const errCtx = "helptext"

	var (
		variable      arrayFlags
		varsFile      arrayFlags
		stampInfoFile arrayFlags
	)

	var (
		binaryName string
		tpl        string
		tplDir     string
		envFile    string
		useEnv     bool
		startTag   string
		endTag     string
	)

	flag.StringVar(
		&binaryName, "binary", "",
		"Binary name: output file name (single template)"+
			" or output name prefix (template directory)",
	)

	flag.StringVar(
		&tpl, "template", "",
		"Help-text template file path",
	)

	flag.StringVar(
		&tplDir, "template-dir", "",
		"Directory of help-text templates"+
			" (renders every entry)",
	)

	flag.Var(
		&variable,
		"variable",
		"Variable in NAME=VALUE format (repeatable)",
	)

	flag.Var(
		&varsFile,
		"vars-file",
		"JSON or YAML variable file (repeatable)",
	)

	flag.Var(
		&stampInfoFile,
		"stamp-info-file",
		"Workspace status file path (repeatable)",
	)

	flag.StringVar(
		&envFile, "env-file", "",
		"Dotenv file loaded into the environment before"+
			" $OUT_DIR is resolved",
	)

	flag.BoolVar(
		&useEnv, "use-env", false,
		"Merge the process environment into the variables",
	)

	flag.StringVar(
		&startTag, "start-tag", "{{",
		"Start tag for template placeholders",
	)

	flag.StringVar(
		&endTag, "end-tag", "}}",
		"End tag for template placeholders",
	)

	flag.Parse()

	if binaryName == "" {
		return fmt.Errorf("%s: -binary must be set", errCtx)
	}

	if (tpl == "") == (tplDir == "") {
		return fmt.Errorf(
			"%s: exactly one of -template or"+
				" -template-dir must be set",
			errCtx,
		)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf(
				"%s: loading env file: %w", errCtx, err,
			)
		}
	}

	merged, err := assembleVars(
		stampInfoFile, varsFile, useEnv, variable,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	en := helptext.Engine{
		StartTag: startTag,
		EndTag:   endTag,
	}

	if tpl != "" {
		if err := en.RenderFile(
			binaryName, tpl, merged,
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	if err := en.RenderDir(
		binaryName, tplDir, merged,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// assembleVars merges the variable sources with fixed
// precedence: stamp files, then variable files, then the
// process environment, then explicit -variable pairs.
func assembleVars(
	stampFiles []string,
	varsFiles []string,
	useEnv bool,
	pairs []string,
) (map[string]string, error) {
	merged, err := vars.LoadStampFiles(stampFiles)
	if err != nil {
		return nil, err
	}

	for _, vf := range varsFiles {
		fileVars, err := vars.LoadFile(vf)
		if err != nil {
			return nil, err
		}

		merged = vars.Merge(merged, fileVars)
	}

	if useEnv {
		merged = vars.Merge(merged, vars.Environ())
	}

	explicit, err := vars.ParsePairs(pairs)
	if err != nil {
		return nil, err
	}

	return vars.Merge(merged, explicit), nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
