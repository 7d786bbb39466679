package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yiblet/minigrep/internal/config"
	"github.com/yiblet/minigrep/internal/search"
	"github.com/yiblet/minigrep/internal/source"
)

// ContentReader loads the full content for a source identifier
type ContentReader interface {
	Read(id string) (string, error)
}

// Run reads the configured source, searches it and writes each matching
// line to w in source order.
func Run(cfg *config.Config, r ContentReader, w io.Writer) error {
	content, err := r.Read(cfg.Source())
	if err != nil {
		return err
	}

	matches := search.Matcher(cfg.IgnoreCase())(cfg.Query(), content)

	out := bufio.NewWriter(w)
	for _, line := range matches {
		if _, err := out.WriteString(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Main runs one invocation and returns the process exit status
func Main(args []string, lookup config.LookupFunc, stdin io.Reader, stdout, stderr io.Writer) int {
	// help is only offered where the tokens could not form a search
	if len(args) == 2 && isHelp(args[1]) {
		if err := writeHelp(stdout, args[1]); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	cfg, err := config.Build(args, lookup)
	if err != nil {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		if err := writeUsage(stderr); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	if err := Run(cfg, source.NewReader(stdin), stdout); err != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}
	return 0
}
