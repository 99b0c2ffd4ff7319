package rewrite

import (
	"bufio"
	"io"
	"strings"
)

// NotFound is returned by FindLine when no line contains the search string.
const NotFound = -1

// FindLine reads r line by line from its current position and returns the
// 1-based number of the first line containing substr, or NotFound.
// Matching is plain, case-sensitive substring containment on the line text
// without its terminator.
func FindLine(r io.Reader, substr string) (int, error) {
	reader := bufio.NewReader(r)
	lineNumber := 0

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lineNumber++
			if strings.Contains(strings.TrimRight(line, "\r\n"), substr) {
				return lineNumber, nil
			}
		}
		if err == io.EOF {
			return NotFound, nil
		}
		if err != nil {
			return NotFound, err
		}
	}
}
