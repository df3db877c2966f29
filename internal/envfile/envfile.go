// Package envfile reads KEY=VALUE files (.env, .env.local) into the process
// environment so ADMONITIONS_* overrides can live next to a document tree.
// Variables already set in the environment take precedence.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFiles are loaded by the CLI, in order. Earlier files win.
var DefaultFiles = []string{".env.local", ".env"}

// Var is one assignment read from an env file.
type Var struct {
	Key   string
	Value string
	Line  int
}

// Parse reads assignments from r. Blank lines, comments and lines without
// '=' are skipped.
func Parse(r io.Reader) ([]Var, error) {
	var vars []Var
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := splitAssignment(line)
		if !ok {
			continue
		}
		vars = append(vars, Var{Key: key, Value: value, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

// Load applies every file in paths and returns the keys it set.
// Missing files are ignored.
func Load(paths ...string) ([]string, error) {
	var set []string
	for _, path := range paths {
		keys, err := loadFile(path)
		if err != nil {
			return set, err
		}
		set = append(set, keys...)
	}
	return set, nil
}

func loadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	vars, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	var set []string
	for _, v := range vars {
		if _, exists := os.LookupEnv(v.Key); exists {
			continue
		}
		if err := os.Setenv(v.Key, v.Value); err != nil {
			return set, fmt.Errorf("%s:%d: %w", path, v.Line, err)
		}
		set = append(set, v.Key)
	}
	return set, nil
}

// splitAssignment handles an optional export prefix and matching quotes.
func splitAssignment(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	if key == "" {
		return "", "", false
	}
	return key, unquote(strings.TrimSpace(value)), true
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
