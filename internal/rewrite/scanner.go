package rewrite

import (
	"bufio"
	"bytes"
	"io"
	"sort"
	"strings"
)

// ReaderRewriter implements LineRewriter on top of bufio.Reader, so lines of any
// length are handled and their original terminators survive the rewrite.
type ReaderRewriter struct {
	reader     *bufio.Reader
	output     bytes.Buffer
	lineNo     int    // how many original lines have been consumed so far
	pending    string // line read ahead by InsertLine, not yet written
	hasPending bool
	finished   bool // true once we've reached EOF
}

// NewReaderRewriter constructs a ReaderRewriter over an io.Reader holding the full file content.
func NewReaderRewriter(r io.Reader) *ReaderRewriter {
	return &ReaderRewriter{
		reader: bufio.NewReader(r),
	}
}

// next returns the next original line including its terminator. ok is false at EOF.
func (rw *ReaderRewriter) next() (line string, ok bool, err error) {
	if rw.hasPending {
		rw.hasPending = false
		return rw.pending, true, nil
	}
	if rw.finished {
		return "", false, nil
	}
	line, err = rw.reader.ReadString('\n')
	if err == io.EOF {
		rw.finished = true
		return line, line != "", nil
	}
	if err != nil {
		return "", false, err
	}
	return line, true, nil
}

// CopyLinesUntil writes original lines [0..lineIndex-1] to output and positions the reader at lineIndex.
func (rw *ReaderRewriter) CopyLinesUntil(lineIndex int) error {
	for rw.lineNo < lineIndex {
		line, ok, err := rw.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		rw.output.WriteString(line)
		rw.lineNo++
	}
	return nil
}

// InsertLine writes text plus a terminator at the current position.
func (rw *ReaderRewriter) InsertLine(text string) error {
	line, ok, err := rw.next()
	if err != nil {
		return err
	}
	terminator := "\n"
	if ok {
		if strings.HasSuffix(line, "\r\n") {
			terminator = "\r\n"
		}
		rw.pending = line
		rw.hasPending = true
	}
	rw.output.WriteString(text)
	rw.output.WriteString(terminator)
	return nil
}

// CopyRemainingLines writes all lines from the current position through EOF.
func (rw *ReaderRewriter) CopyRemainingLines() error {
	for {
		line, ok, err := rw.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		rw.output.WriteString(line)
		rw.lineNo++
	}
}

// Bytes returns the fully rewritten buffer.
func (rw *ReaderRewriter) Bytes() []byte {
	return rw.output.Bytes()
}

// BuildLineOffsets returns a slice of byte offsets where each new line begins.
// E.g. if content[0]=='a' and content[5]=='\n', then offsets = [0,6,...].
func BuildLineOffsets(content []byte) []int {
	offsets := []int{0}
	for i, b := range content {
		if b == '\n' && i+1 < len(content) {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// LineIndexOfByte returns the 0-based line index that contains offset, given
// the line-start offsets produced by BuildLineOffsets.
func LineIndexOfByte(lineOffsets []int, offset int) int {
	i := sort.Search(len(lineOffsets), func(i int) bool {
		return lineOffsets[i] > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}
