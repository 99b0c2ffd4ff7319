package rewrite

// LineRewriter lets you copy/insert at the granularity of whole lines.
// Original lines keep their own terminators; only inserted lines get a new one.
type LineRewriter interface {
	// CopyLinesUntil writes original lines [0..lineIndex-1], positioning the reader at lineIndex.
	CopyLinesUntil(lineIndex int) error

	// InsertLine writes text as a new line at the current position without consuming
	// any original line. The terminator matches the line that follows it: "\r\n" when
	// that line ends in "\r\n", "\n" otherwise.
	InsertLine(text string) error

	// CopyRemainingLines writes all leftover original lines (from current position to EOF).
	CopyRemainingLines() error

	// Bytes returns the fully rewritten buffer.
	Bytes() []byte
}
