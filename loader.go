package mymoney

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadCommandFile reads a command file in full and returns its lines split
// on whitespace, one token slice per line, in file order.
func ReadCommandFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open command file: %w", err)
	}
	defer file.Close()

	var lines [][]string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read command file %q: %w", path, err)
	}
	return lines, nil
}
