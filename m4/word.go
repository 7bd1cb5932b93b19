package m4

// readQuotedWord appends a possibly quoted word to buf and returns it.
//
// If the first byte is the open quote, quoting is engaged: every byte inside
// the quotes is kept, while the quotes themselves are stripped, so "`a`b'c'"
// reads as "abc". Outside the quotes only word characters are kept, and the
// first byte which is neither ends the word and is pushed back.
//
// An embedded NUL ends the word, is consumed and sets s.nul.
func (s *Scanner) readQuotedWord(buf []byte) []byte {
	s.nul = false

	c, ok := s.next()
	if !ok {
		return buf
	}

	q := s.quote
	quoted := c == q.Open
	depth := 0

	if quoted {
		depth++
		c, ok = s.next()
	}

	for ; ok; c, ok = s.next() {
		switch {
		case c == 0:
			s.nul = true
			return buf

		// close before open to support open and close characters to be the same
		case quoted && depth > 0 && c == q.Close:
			depth--

		case quoted && c == q.Open:
			depth++

		case depth > 0 || isWord(c):
			buf = append(buf, c)

		default:
			s.unread()
			return buf
		}
	}

	return buf
}
