// Package editor implements the two file edits: inserting a line before the
// first line containing a substring, and a whole-file pattern substitution.
//
// Both edits load the complete file, build the new content in memory and
// replace the file in one atomic step.
package editor

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"addline/internal/fsutil"
	"addline/internal/rewrite"
)

// ErrPatternNotFound is returned by InsertBefore when no line contains the
// search string. The file is left untouched.
var ErrPatternNotFound = errors.New("pattern not found")

// InsertResult describes a successful insertion.
type InsertResult struct {
	// Line is the 1-based number of the matched line, which is also the
	// line number the inserted text occupies afterwards.
	Line int
}

// ReplaceResult describes a replace run.
type ReplaceResult struct {
	Matches int
}

// Editor applies edits to files on fs.
type Editor struct {
	fs     afero.Fs
	logger *slog.Logger
}

// New returns an Editor. A nil logger falls back to slog.Default().
func New(fs afero.Fs, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{fs: fs, logger: logger}
}

// InsertBefore inserts text as a new line immediately before the first line
// of path that contains search.
func (e *Editor) InsertBefore(path, search, text string) (*InsertResult, error) {
	content, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	lineNumber, err := rewrite.FindLine(bytes.NewReader(content), search)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s", path)
	}
	if lineNumber == rewrite.NotFound {
		e.logger.Debug("search string not found", "path", path, "search", search)
		return nil, errors.Wrapf(ErrPatternNotFound, "%q in %s", search, path)
	}
	e.logger.Debug("found insertion point", "path", path, "line", lineNumber)

	rw := rewrite.NewReaderRewriter(bytes.NewReader(content))
	if err := rw.CopyLinesUntil(lineNumber - 1); err != nil {
		return nil, errors.Wrapf(err, "failed to rewrite %s", path)
	}
	if err := rw.InsertLine(text); err != nil {
		return nil, errors.Wrapf(err, "failed to rewrite %s", path)
	}
	if err := rw.CopyRemainingLines(); err != nil {
		return nil, errors.Wrapf(err, "failed to rewrite %s", path)
	}

	if err := fsutil.WriteFileAtomic(e.fs, path, rw.Bytes()); err != nil {
		return nil, err
	}
	e.logger.Info("inserted line", "path", path, "line", lineNumber)

	return &InsertResult{Line: lineNumber}, nil
}

// Replace substitutes every non-overlapping match of pattern in path with
// text, taken literally. A pattern that matches nothing is not an error; the
// file is written back unchanged.
func (e *Editor) Replace(path, pattern, text string) (*ReplaceResult, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}

	content, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	matches := re.FindAllIndex(content, -1)
	if len(matches) > 0 && e.logger.Enabled(context.Background(), slog.LevelDebug) {
		offsets := rewrite.BuildLineOffsets(content)
		for _, m := range matches {
			e.logger.Debug("pattern match", "path", path, "line", rewrite.LineIndexOfByte(offsets, m[0])+1)
		}
	}

	replaced := re.ReplaceAllLiteral(content, []byte(text))
	if err := fsutil.WriteFileAtomic(e.fs, path, replaced); err != nil {
		return nil, err
	}
	e.logger.Info("replaced pattern", "path", path, "matches", len(matches))

	return &ReplaceResult{Matches: len(matches)}, nil
}
