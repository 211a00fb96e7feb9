package model

import (
	"bufio"
	"fmt"
	"os"
)

// LineContext represents a line from a file with surrounding context
type LineContext struct {
	Path       string `json:"path"`
	Before2    string `json:"before2"` // Two lines before the target
	Before1    string `json:"before1"` // Line before the target
	Target     string `json:"target"`  // The declaration line
	After1     string `json:"after1"`  // Line after the target
	After2     string `json:"after2"`  // Two lines after the target
	LineNumber int    `json:"lineNumber"`
	HasBefore2 bool   `json:"hasBefore2"`
	HasBefore1 bool   `json:"hasBefore1"`
	HasAfter1  bool   `json:"hasAfter1"`
	HasAfter2  bool   `json:"hasAfter2"`
	ErrorMsg   string `json:"error,omitempty"` // Error message if file couldn't be read
}

// GetLineContext reads the file a location points at and returns its start
// line with two lines of context on each side. Locations without a start
// position resolve to the first line.
func GetLineContext(loc Location) LineContext {
	lineNumber := 1
	if loc.Start != nil && loc.Start.Line > 0 {
		lineNumber = loc.Start.Line
	}
	result := LineContext{
		Path:       loc.Path,
		LineNumber: lineNumber,
	}
	if loc.Path == "" {
		result.ErrorMsg = "No declaration path"
		return result
	}

	file, err := os.Open(loc.Path)
	if err != nil {
		result.ErrorMsg = fmt.Sprintf("Could not read file: %v", err)
		return result
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		result.ErrorMsg = fmt.Sprintf("Error reading file: %v", err)
		return result
	}

	if lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))
		return result
	}

	result.Target = lines[lineNumber-1]
	if lineNumber > 2 {
		result.Before2 = lines[lineNumber-3]
		result.HasBefore2 = true
	}
	if lineNumber > 1 {
		result.Before1 = lines[lineNumber-2]
		result.HasBefore1 = true
	}
	if lineNumber < len(lines) {
		result.After1 = lines[lineNumber]
		result.HasAfter1 = true
	}
	if lineNumber+1 < len(lines) {
		result.After2 = lines[lineNumber+1]
		result.HasAfter2 = true
	}
	return result
}
