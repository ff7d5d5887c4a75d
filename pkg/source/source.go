// Package source reads co-purchase input files as an ordered sequence of text lines.
//
// A [Lines] value wraps a plain or gzip-compressed file and yields each line
// exactly once, in file order, with the line terminator ("\n" or "\r\n")
// removed. Nothing is dropped or merged: blank lines are yielded as empty
// strings because they delimit records.
//
// Failures use the structured codes from pkg/errors:
//   - SOURCE_UNAVAILABLE when the path cannot be opened or a read fails
//   - LINE_DECODE when a line is not valid UTF-8 or exceeds [MaxLineSize]
//
// Both abort iteration; the caller receives the error as the final element.
package source

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"

	errs "github.com/matzehuels/copurchase/pkg/errors"
)

// MaxLineSize is the longest line accepted, in bytes.
const MaxLineSize = 1 << 20

// ErrInvalidUTF8 is the cause attached to LINE_DECODE errors for undecodable lines.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Lines is a single-use line sequence over an input stream.
// It is not safe for concurrent use.
type Lines struct {
	name    string
	r       io.Reader
	closers []io.Closer
	count   int
}

// Open opens path for reading. Paths ending in ".gz" are decompressed.
func Open(path string) (*Lines, error) {
	if err := errs.ValidateInputPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeSourceUnavailable, err, "open %s", path)
	}
	l := &Lines{name: path, r: f, closers: []io.Closer{f}}

	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errs.Wrap(errs.ErrCodeSourceUnavailable, err, "open gzip stream %s", path)
		}
		l.r = zr
		l.closers = append([]io.Closer{zr}, l.closers...)
	}
	return l, nil
}

// FromReader wraps r. The name is used in error messages only.
// Closing the returned Lines does not close r.
func FromReader(name string, r io.Reader) *Lines {
	return &Lines{name: name, r: r}
}

// Name returns the path or name the lines are read from.
func (l *Lines) Name() string { return l.name }

// Count returns the number of lines yielded so far.
func (l *Lines) Count() int { return l.count }

// All returns an iterator over the remaining lines. On failure the iterator
// yields a single ("", err) pair and stops.
func (l *Lines) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sc := bufio.NewScanner(l.r)
		sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

		for sc.Scan() {
			line := sc.Bytes()
			if !utf8.Valid(line) {
				cause := &errs.LineError{Line: l.count + 1, Err: ErrInvalidUTF8}
				yield("", errs.Wrap(errs.ErrCodeLineDecode, cause, "decode %s", l.name))
				return
			}
			l.count++
			if !yield(string(line), nil) {
				return
			}
		}

		if err := sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				cause := &errs.LineError{Line: l.count + 1, Err: err}
				yield("", errs.Wrap(errs.ErrCodeLineDecode, cause, "decode %s", l.name))
				return
			}
			yield("", errs.Wrap(errs.ErrCodeSourceUnavailable, err, "read %s", l.name))
		}
	}
}

// Close releases the underlying file and decompressor, if any.
func (l *Lines) Close() error {
	var first error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	l.closers = nil
	return first
}
