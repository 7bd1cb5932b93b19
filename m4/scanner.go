package m4

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Scanner finds the definitions in a single M4 or Autoconf input.
//
// All the state lives in the Scanner, so a new one is needed for every input,
// and different inputs may be scanned concurrently by different Scanners.
type Scanner struct {
	src  *lineReader
	sink Sink

	// dialect is the current dialect, it can only switch from M4 to Autoconf.
	dialect Dialect

	// quote is the current quote pair.
	quote QuotePair

	// token is the word read on the previous step, empty if the previous
	// step read anything else.
	token []byte

	// tokenLine is the line on which token starts.
	tokenLine int

	// nul is set when the last word read ended at a NUL byte.
	nul bool

	logger zerolog.Logger

	// done is set once the source is exhausted.
	done bool

	// err is the first read error other than io.EOF.
	err error
}

// Option configures a [Scanner].
type Option func(s *Scanner)

// WithDialect sets the dialect the input starts in. Default is [DialectM4].
func WithDialect(d Dialect) Option {
	return func(s *Scanner) {
		s.setDialect(d)
	}
}

// WithLogger enables debug logging of dialect switches and ignored changequote calls.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner reading src and reporting tags to sink.
// A nil sink discards the tags.
func New(src io.ByteScanner, sink Sink, opts ...Option) *Scanner {
	if sink == nil {
		sink = discard
	}

	s := &Scanner{
		src:    newLineReader(src),
		sink:   sink,
		logger: zerolog.Nop(),
	}

	s.setDialect(DialectM4)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dialect returns the current dialect.
func (s *Scanner) Dialect() Dialect {
	return s.dialect
}

// Quotes returns the current quote pair.
func (s *Scanner) Quotes() QuotePair {
	return s.quote
}

// setDialect switches the dialect and resets the quotes to its default.
func (s *Scanner) setDialect(d Dialect) {
	s.dialect = d
	s.quote = d.DefaultQuotes()
}

// Scan reads the input to its end, emitting tags along the way.
//
// Malformed input is never an error. The returned error is the read error
// of the source, if any, in which case the tags emitted so far are still valid.
func (s *Scanner) Scan() error {
	for {
		c, ok := s.next()
		if !ok {
			break
		}

		switch {
		case c == '#' || s.tokenIs("dnl"):
			s.token = s.token[:0]
			s.skipComment(c)
			continue

		case c == s.quote.Open:
			s.token = s.token[:0]
			s.skipQuoted()
			continue

		case s.dialect == DialectAutoconf && (c == '"' || c == '`'):
			s.token = s.token[:0]
			s.skipString(c)
			continue

		// shell-style variables for Autoconf
		case c == '=':
			s.emit(KindVariable, string(s.token), s.tokenLine)

		case c == '(' && len(s.token) > 0:
			s.handleMacroCall(string(s.token))
		}

		s.token = s.token[:0]
		if isWord(c) {
			s.unread()
			s.tokenLine = s.src.line
			s.token = s.readQuotedWord(s.token)
		}
	}

	return s.err
}

func (s *Scanner) tokenIs(name string) bool {
	return string(s.token) == name
}

// emit hands a tag over to the sink. Empty names are dropped.
func (s *Scanner) emit(kind Kind, name string, line int) {
	if name == "" {
		return
	}

	s.sink.Emit(Tag{Kind: kind, Name: name, Line: line})
}

// ScanString returns the tags found in input.
func ScanString(input string, opts ...Option) Tags {
	var tags Tags
	// strings.Reader never fails
	_ = New(strings.NewReader(input), &tags, opts...).Scan()
	return tags
}

// ScanReader returns the tags found in r.
func ScanReader(r io.Reader, opts ...Option) (Tags, error) {
	bs, ok := r.(io.ByteScanner)
	if !ok {
		bs = bufio.NewReader(r)
	}

	var tags Tags
	err := New(bs, &tags, opts...).Scan()
	return tags, err
}
