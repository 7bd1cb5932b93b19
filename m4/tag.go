package m4

// Kind is the category of a [Tag].
type Kind uint8

const (
	// KindMacro marks a macro definition.
	KindMacro Kind = iota

	// KindVariable marks a shell-style variable assignment.
	KindVariable
)

// String returns the short kind name, e.g. "macro".
func (k Kind) String() string {
	return Parser.KindInfo(k).Name
}

// Letter returns the single display letter of the kind.
func (k Kind) Letter() byte {
	return Parser.KindInfo(k).Letter
}

// Tag describes one discovered definition.
type Tag struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
	// Line is the 1-based line on which the name starts.
	Line int `json:"line"`
}

// Sink receives tags as soon as they are found.
type Sink interface {
	Emit(t Tag)
}

// SinkFunc adapts an ordinary function to the [Sink] interface.
type SinkFunc func(t Tag)

func (f SinkFunc) Emit(t Tag) {
	f(t)
}

// Tags is a [Sink] collecting the tags in the order of emission.
type Tags []Tag

func (tags *Tags) Emit(t Tag) {
	*tags = append(*tags, t)
}

// Names returns tag names in order, handy for comparisons.
func (tags Tags) Names() []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}

// discard is used when the caller provides no sink.
var discard = SinkFunc(func(Tag) {})
