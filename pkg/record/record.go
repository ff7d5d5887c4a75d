package record

import (
	"iter"
	"slices"
	"strings"
)

// Line prefixes recognized by the parser.
const (
	PrefixID       = "ASIN: "
	PrefixTitle    = "  title: "
	PrefixCategory = "  group: "
	PrefixSimilar  = "  similar: "
)

// Record is one parsed product entry.
type Record struct {
	ID       string
	Title    string
	Category string
	Related  []string // may be empty; order as listed in the input
}

// Options configures parsing.
type Options struct {
	// ResetOnClose clears identifier, title, category and related list after
	// each emitted record instead of carrying them into the next one.
	ResetOnClose bool
}

// Parser is a line-at-a-time record parser. The zero value is ready to use
// with default options. A Parser is not safe for concurrent use.
type Parser struct {
	opts     Options
	id       string
	title    string
	category string
	related  []string
	hasID    bool
	pending  bool
}

// NewParser returns a parser with the given options.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Feed consumes one line. It returns the completed record and true when the
// line closes a record that has an identifier.
func (p *Parser) Feed(line string) (Record, bool) {
	switch {
	case strings.HasPrefix(line, PrefixID):
		p.id = strings.TrimSpace(line[len(PrefixID):])
		p.hasID = true
		p.pending = true
	case strings.HasPrefix(line, PrefixTitle):
		p.title = strings.TrimSpace(line[len(PrefixTitle):])
		p.pending = true
	case strings.HasPrefix(line, PrefixCategory):
		p.category = strings.TrimSpace(line[len(PrefixCategory):])
		p.pending = true
	case strings.HasPrefix(line, PrefixSimilar):
		p.related = parseSimilar(line[len(PrefixSimilar):])
		p.pending = true
	case strings.TrimSpace(line) == "":
		return p.close()
	}
	return Record{}, false
}

// Pending reports whether marker lines have been read since the last blank
// line. A pending block at end of input is dropped.
func (p *Parser) Pending() bool { return p.pending }

func (p *Parser) close() (Record, bool) {
	p.pending = false
	if !p.hasID {
		return Record{}, false
	}
	rec := Record{
		ID:       p.id,
		Title:    p.title,
		Category: p.category,
		Related:  p.related,
	}
	p.related = nil
	if p.opts.ResetOnClose {
		p.id, p.title, p.category = "", "", ""
		p.hasID = false
	}
	return rec, true
}

// parseSimilar splits the similar field and drops the leading count token.
func parseSimilar(s string) []string {
	fields := strings.Fields(s)
	if len(fields) <= 1 {
		return nil
	}
	return slices.Clone(fields[1:])
}

// Result summarizes a completed parse.
type Result struct {
	Records []Record
	Lines   int  // lines consumed
	Dropped bool // a trailing block without a closing blank line was discarded
}

// Parse reads every line and returns the emitted records in input order.
// The first error yielded by lines aborts parsing and is returned as is.
func Parse(lines iter.Seq2[string, error], opts Options) (Result, error) {
	var res Result
	err := Scan(lines, opts, func(r Record) error {
		res.Records = append(res.Records, r)
		return nil
	}, &res)
	return res, err
}

// Scan feeds lines to a parser and calls fn for every emitted record.
// If stats is non-nil it receives the line count and drop flag.
// An error from fn stops the scan and is returned.
func Scan(lines iter.Seq2[string, error], opts Options, fn func(Record) error, stats *Result) error {
	p := NewParser(opts)
	n := 0
	for line, err := range lines {
		if err != nil {
			return err
		}
		n++
		if rec, ok := p.Feed(line); ok {
			if err := fn(rec); err != nil {
				return err
			}
		}
	}
	if stats != nil {
		stats.Lines = n
		stats.Dropped = p.Pending() && p.hasID
	}
	return nil
}
