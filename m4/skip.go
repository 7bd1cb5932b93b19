package m4

// isWord reports whether c can be part of a macro or variable name.
func isWord(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		c == '_'
}

// isSpace matches the C locale isspace.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// skipLineEnding consumes the rest of a line ending if c starts one.
// "\r\n" is treated as a single line ending.
func (s *Scanner) skipLineEnding(c byte) bool {
	switch c {
	case '\n':
		return true

	case '\r':
		// try to eat the '\n' of a "\r\n" sequence
		if next, ok := s.next(); ok && next != '\n' {
			s.unread()
		}
		return true
	}

	return false
}

// skipLine discards everything up to and including the next line ending.
func (s *Scanner) skipLine() {
	for {
		c, ok := s.next()
		if !ok || s.skipLineEnding(c) {
			return
		}
	}
}

// skipComment discards a "#" or "dnl" comment. c is the byte that triggered it,
// which may already be the line ending.
func (s *Scanner) skipComment(c byte) {
	if s.skipLineEnding(c) {
		return
	}

	s.skipLine()
}

func (s *Scanner) skipBlanks() {
	for {
		c, ok := s.next()
		if !ok {
			return
		}

		if !isSpace(c) {
			s.unread()
			return
		}
	}
}

// skipQuoted discards a quoted region whose opening quote was already consumed,
// honoring nested quotes. Close is checked before open, so a pair made of
// the same character still balances.
func (s *Scanner) skipQuoted() {
	q := s.quote
	depth := 1

	for {
		c, ok := s.next()
		if !ok {
			return
		}

		switch c {
		case q.Close:
			depth--
			if depth == 0 {
				return
			}

		case q.Open:
			depth++
		}
	}
}

// skipString discards an Autoconf shell string opened by c, up to its closing
// character or to the end of the current line.
//
// Stopping at the end of the line is a compromise: "`" opens both the M4-style
// "`...'" and the shell-style "`...`" quotes.
func (s *Scanner) skipString(c byte) {
	end := closeString(c)

	for {
		c, ok := s.next()
		if !ok || c == end || s.skipLineEnding(c) {
			return
		}
	}
}

// closeString returns the closing character of an Autoconf string form.
func closeString(open byte) byte {
	if open == '`' {
		return '\''
	}

	return open
}
