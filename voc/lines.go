package voc

import (
	"bufio"
	"os"
	"strings"
)

// Longest line accepted in a list file.
const maxLineLen = 1 << 20

// ReadLines loads a list file with surrounding whitespace removed from every line.
//
// Blank lines are kept as empty strings so that line i of the file
// is always element i of the result.
func ReadLines(name string) ([]string, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, &FileAccessError{Path: name, Err: err}
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLen)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileAccessError{Path: name, Err: err}
	}
	return lines, nil
}

// ReadLinesAll reads every file before returning.
// The first file that cannot be read aborts the batch.
func ReadLinesAll(names []string) ([][]string, error) {
	all := make([][]string, len(names))
	for i, name := range names {
		lines, err := ReadLines(name)
		if err != nil {
			return nil, err
		}
		all[i] = lines
	}
	return all, nil
}
