package m4

// readMacroArg reads one argument of a macro call and returns it along with the
// delimiter which ended it: ',' if another argument follows, ')' if the call is
// closed, or 0 if the input ended or a NUL byte was read first.
//
// Leading blanks are dropped, quoted spans are read with [Scanner.readQuotedWord]
// and kept without their quotes, and trailing unquoted blanks are trimmed.
// Parentheses nest the way they do in M4, so "f(a, b)" is a single argument.
//
// The delimiter is pushed back for the caller. A NUL byte is consumed.
func (s *Scanner) readMacroArg() (arg string, delim byte) {
	s.skipBlanks()

	var buf []byte

	// keep is the length of buf without trailing unquoted blanks
	keep := 0

	// parens counts the open parentheses inside the argument
	parens := 0

	for {
		c, ok := s.next()
		if !ok {
			return string(buf[:keep]), 0
		}

		switch {
		case c == 0:
			return string(buf[:keep]), 0

		case c == s.quote.Open:
			s.unread()
			buf = s.readQuotedWord(buf)
			keep = len(buf)
			if s.nul {
				return string(buf[:keep]), 0
			}
			continue

		case parens == 0 && (c == ',' || c == ')'):
			s.unread()
			return string(buf[:keep]), c

		case c == '(':
			parens++

		case c == ')':
			parens--
		}

		buf = append(buf, c)
		if !isSpace(c) {
			keep = len(buf)
		}
	}
}

// readMacroArgs reads the arguments of a macro call up to its closing ")",
// consuming the commas in between. ok is false if the call has more than limit
// arguments or is not closed before the end of the input.
func (s *Scanner) readMacroArgs(limit int) (args []string, ok bool) {
	for {
		arg, delim := s.readMacroArg()
		args = append(args, arg)

		switch {
		case delim == ')':
			return args, true

		case delim == 0 || len(args) == limit:
			return args, false
		}

		// the comma
		s.next()
	}
}
