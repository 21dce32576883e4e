package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadSpecArgs returns args, or the lines of r when args is empty or "-".
// Blank lines and lines starting with "--" are skipped.
func ReadSpecArgs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}

	var specs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		specs = append(specs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read type specifications: %w", err)
	}
	return specs, nil
}

// ReadFileOrStdin reads path, or r when path is "-".
func ReadFileOrStdin(path string, r io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
