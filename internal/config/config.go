package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// IgnoreCaseFlag is the only recognized optional token.
	IgnoreCaseFlag = "--ignore-case"

	// IgnoreCaseEnv enables case-insensitive search when set to any value
	// and no flag token is given.
	IgnoreCaseEnv = "IGNORE_CASE"

	// requiredArgs counts the program name, the query and the source.
	requiredArgs = 3
)

// ErrInsufficientArguments is returned when the query or source is missing.
var ErrInsufficientArguments = errors.New("not enough arguments")

// UnrecognizedFlagError reports a fourth token whose key is not IgnoreCaseFlag.
type UnrecognizedFlagError struct {
	Expected string
	Actual   string
}

func (e *UnrecognizedFlagError) Error() string {
	return fmt.Sprintf("expected %q but got %q", e.Expected, e.Actual)
}

// LookupFunc reports whether a process-wide variable is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config holds the resolved search parameters. It has no setters.
type Config struct {
	query      string
	source     string
	ignoreCase bool
}

// New creates a Config directly, bypassing token resolution
func New(query, source string, ignoreCase bool) *Config {
	return &Config{
		query:      query,
		source:     source,
		ignoreCase: ignoreCase,
	}
}

// Query returns the text to search for
func (c *Config) Query() string { return c.query }

// Source returns the opaque source identifier
func (c *Config) Source() string { return c.source }

// IgnoreCase reports whether matching is case-insensitive
func (c *Config) IgnoreCase() bool { return c.ignoreCase }

// Build resolves a Config from invocation tokens.
// args[0] is the program name, args[1] the query, args[2] the source and
// args[3] an optional "--ignore-case[=<bool>]" token. Without args[3],
// lookup is consulted for IgnoreCaseEnv; only its presence matters.
func Build(args []string, lookup LookupFunc) (*Config, error) {
	if len(args) < requiredArgs {
		return nil, ErrInsufficientArguments
	}

	// strings.Clone detaches the fields from the caller's backing storage
	query := strings.Clone(args[1])
	source := strings.Clone(args[2])

	var ignoreCase bool
	if len(args) > requiredArgs {
		var err error
		ignoreCase, err = parseIgnoreCase(args[requiredArgs])
		if err != nil {
			return nil, err
		}
	} else if lookup != nil {
		_, ignoreCase = lookup(IgnoreCaseEnv)
	}

	return New(query, source, ignoreCase), nil
}

// parseIgnoreCase splits the flag token on its first '=' and interprets the
// value. Values other than the literals "true" and "false" resolve to false.
func parseIgnoreCase(token string) (bool, error) {
	key, value, hasValue := strings.Cut(token, "=")
	if key != IgnoreCaseFlag {
		return false, &UnrecognizedFlagError{Expected: IgnoreCaseFlag, Actual: key}
	}

	if !hasValue {
		return true, nil
	}

	return value == "true", nil
}
