package m4

// macroHandler is what a macro call means for the index.
type macroHandler uint8

const (
	// macroIgnore is an ordinary macro invocation.
	macroIgnore macroHandler = iota

	// macroDefineLike introduces a new macro named by its first argument.
	macroDefineLike

	// macroChangeQuote replaces the current quote pair.
	macroChangeQuote
)

// macroTable maps every macro spelling the scanner cares about to its handler.
// Any other name is [macroIgnore].
var macroTable = map[string]macroHandler{
	"define":         macroDefineLike,
	"m4_define":      macroDefineLike,
	"pushdef":        macroDefineLike,
	"m4_pushdef":     macroDefineLike,
	"m4_defun":       macroDefineLike,
	"AC_DEFUN":       macroDefineLike,
	"AC_DEFUN_ONCE":  macroDefineLike,
	"AU_DEFUN":       macroDefineLike,
	"AU_ALIAS":       macroDefineLike,
	"changequote":    macroChangeQuote,
	"m4_changequote": macroChangeQuote,
}

// handleMacroCall is called with the name of a macro right after its "(" was read.
func (s *Scanner) handleMacroCall(name string) {
	if s.dialect != DialectAutoconf && hasAutoconfPrefix(name) {
		s.setDialect(DialectAutoconf)
		s.logger.Debug().
			Str("macro", name).
			Int("line", s.src.line).
			Msg("switched to autoconf dialect")
	}

	switch macroTable[name] {
	case macroDefineLike:
		s.skipBlanks()
		line := s.src.line

		// a name cut short by the end of the input is not a definition,
		// one cut short by a NUL byte is
		if name, delim := s.readMacroArg(); delim != 0 || !s.done {
			s.emit(KindMacro, name, line)
		}

	case macroChangeQuote:
		s.changeQuote()
	}
}

// changeQuote reads the two arguments of a changequote call and installs them
// as the new quote pair. Anything but exactly two single-character arguments
// leaves the quotes as they are.
func (s *Scanner) changeQuote() {
	line := s.src.line

	args, ok := s.readMacroArgs(2)
	if !ok || len(args) != 2 || len(args[0]) != 1 || len(args[1]) != 1 {
		s.logger.Debug().
			Strs("args", args).
			Int("line", line).
			Str("quotes", s.quote.String()).
			Msg("changequote ignored")
		return
	}

	s.quote = QuotePair{Open: args[0][0], Close: args[1][0]}
}
