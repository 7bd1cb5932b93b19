package m4

// Dialect selects the default quotes and the extra string forms recognized by the [Scanner].
type Dialect uint8

const (
	// DialectM4 is raw M4, quoting with "`" and "'".
	DialectM4 Dialect = iota

	// DialectAutoconf is Autoconf-flavored M4, quoting with "[" and "]".
	// Shell strings in double quotes and backticks are skipped on the current line.
	DialectAutoconf
)

// autoconfPrefixes are the macro namespaces which give away an Autoconf input.
var autoconfPrefixes = []string{"AC_", "AM_", "AS_"}

func (d Dialect) String() string {
	switch d {
	case DialectM4:
		return "m4"
	case DialectAutoconf:
		return "autoconf"
	default:
		return "unknown"
	}
}

// DefaultQuotes returns the quote pair active at the start of the input or
// right after switching to the dialect.
func (d Dialect) DefaultQuotes() QuotePair {
	if d == DialectAutoconf {
		return QuotePair{Open: '[', Close: ']'}
	}

	return QuotePair{Open: '`', Close: '\''}
}

// QuotePair is the current pair of quote characters. Open and Close may be the same byte.
type QuotePair struct {
	Open  byte
	Close byte
}

func (q QuotePair) String() string {
	return string([]byte{q.Open, q.Close})
}

// hasAutoconfPrefix reports whether the macro name belongs to one of the Autoconf namespaces.
func hasAutoconfPrefix(name string) bool {
	for _, p := range autoconfPrefixes {
		if len(name) > len(p) && name[:len(p)] == p {
			return true
		}
	}

	return false
}
