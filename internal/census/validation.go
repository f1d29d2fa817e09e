package census

// validation.go gates a file before any row is parsed.
//
// Checks run in a fixed order and the first failure wins:
//  1. Existence: the path must name a regular file
//  2. Extension: must be ".csv", compared case-sensitively
//  3. Header: the first line must equal the expected header byte for byte

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Validate checks path against the structural rules and returns all of its
// lines, header included. The whole file is read into memory.
func Validate(path, expectedHeader string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &Error{Kind: ErrFileNotFound, Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &Error{Kind: ErrFileNotFound, Path: path, Detail: "not a regular file"}
	}

	if ext := filepath.Ext(path); ext != FileExtension {
		if ext == "" {
			ext = "(none)"
		}
		return nil, &Error{
			Kind:   ErrInvalidFileType,
			Path:   path,
			Detail: fmt.Sprintf("extension %s, expected %s", ext, FileExtension),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, &Error{Kind: ErrIncorrectHeader, Path: path, Line: 1, Detail: "empty file"}
	}
	if lines[0] != expectedHeader {
		return nil, &Error{
			Kind:   ErrIncorrectHeader,
			Path:   path,
			Line:   1,
			Detail: fmt.Sprintf("got %q, want %q", lines[0], expectedHeader),
		}
	}

	return lines, nil
}

// splitLines splits on "\n" and drops a trailing "\r" from each line.
// A final line terminator does not produce an empty last line.
func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	lines := strings.Split(data, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
