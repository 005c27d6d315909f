package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// readDocument reads the named file, or stdin when the name is "-" or
// empty.
func readDocument(name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// readLines reads non-empty lines from r, trimming surrounding
// whitespace.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// parseTagArgs converts key=value arguments into a tag mapping. A later
// duplicate key overwrites an earlier one.
func parseTagArgs(args []string) (map[string]string, error) {
	tags := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("tag %q is not in key=value form", arg)
		}
		tags[key] = value
	}
	return tags, nil
}
