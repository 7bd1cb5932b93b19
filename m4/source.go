package m4

import (
	"errors"
	"io"
)

// lineReader wraps the character source and counts lines.
// The source must allow unreading the last byte read, which is all the scanner needs.
type lineReader struct {
	r    io.ByteScanner
	line int
	last byte
}

func newLineReader(r io.ByteScanner) *lineReader {
	return &lineReader{r: r, line: 1}
}

func (lr *lineReader) ReadByte() (byte, error) {
	c, err := lr.r.ReadByte()
	if err != nil {
		return 0, err
	}

	lr.last = c
	if c == '\n' {
		lr.line++
	}

	return c, nil
}

func (lr *lineReader) UnreadByte() error {
	if err := lr.r.UnreadByte(); err != nil {
		return err
	}

	if lr.last == '\n' {
		lr.line--
	}

	// only one byte of lookahead is ever needed
	lr.last = 0

	return nil
}

// next returns the next byte of the input and false at the end of the input.
// A read error other than [io.EOF] ends the input too, but is kept for [Scanner.Scan] to return.
func (s *Scanner) next() (byte, bool) {
	if s.done {
		return 0, false
	}

	c, err := s.src.ReadByte()
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return 0, false
	}

	return c, true
}

// unread pushes back the byte returned by the last successful call to next.
func (s *Scanner) unread() {
	if err := s.src.UnreadByte(); err != nil {
		s.logger.Debug().Err(err).Msg("cannot push back a character")
	}
}
