package cli

import (
	"io"

	"github.com/alexflint/go-arg"
	"github.com/yiblet/minigrep/internal/config"
)

const programName = "minigrep"

// Args describes the invocation surface for help and usage output.
// Tokens are resolved by config.Build, not by go-arg.
type Args struct {
	Query      string  `arg:"positional,required" help:"Text to search for (empty matches every line)"`
	Source     string  `arg:"positional,required" help:"File to search, or - for standard input"`
	IgnoreCase *string `arg:"--ignore-case" placeholder:"BOOL" help:"Match case-insensitively; written as --ignore-case or --ignore-case=true|false"`
}

// Description returns the program description
func (Args) Description() string {
	return "minigrep - print every line of a file that contains a query"
}

// Version returns the program version
func (Args) Version() string {
	return "minigrep 0.1.0"
}

// Epilogue returns additional help text
func (Args) Epilogue() string {
	return `Without --ignore-case, setting ` + config.IgnoreCaseEnv + ` to any value enables case-insensitive search.

Examples:
  minigrep to poem.txt                      # Case-sensitive search
  minigrep rUsT poem.txt --ignore-case=true # Case-insensitive search
  IGNORE_CASE=1 minigrep rust poem.txt      # Case-insensitive via environment
  cat poem.txt | minigrep body -            # Search standard input
  minigrep body ./-                         # Search a file named "-"`
}

// newParser builds the go-arg parser used for help and usage text
func newParser() (*arg.Parser, error) {
	var args Args
	return arg.NewParser(arg.Config{Program: programName, IgnoreEnv: true}, &args)
}

// isHelp reports whether the token asks for help or version output
func isHelp(token string) bool {
	switch token {
	case "-h", "--help", "--version":
		return true
	}
	return false
}

// writeHelp writes help text, or just the version for --version
func writeHelp(w io.Writer, token string) error {
	if token == "--version" {
		_, err := io.WriteString(w, Args{}.Version()+"\n")
		return err
	}

	parser, err := newParser()
	if err != nil {
		return err
	}
	parser.WriteHelp(w)
	return nil
}

// writeUsage writes the one-line usage summary
func writeUsage(w io.Writer) error {
	parser, err := newParser()
	if err != nil {
		return err
	}
	parser.WriteUsage(w)
	return nil
}
