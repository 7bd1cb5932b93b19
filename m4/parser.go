package m4

import (
	"fmt"
	"path"
	"strings"
)

// KindInfo describes a [Kind] to the host index.
type KindInfo struct {
	Kind        Kind   `json:"-"`
	Enabled     bool   `json:"enabled"`
	Letter      byte   `json:"letter"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Definition is what the scanner advertises to the host index: its name,
// the files it claims and the kinds of tags it produces.
type Definition struct {
	Name       string     `json:"name"`
	Patterns   []string   `json:"patterns"`
	Extensions []string   `json:"extensions"`
	Kinds      []KindInfo `json:"kinds"`
}

// Parser is the definition of the M4 scanner.
var Parser = Definition{
	Name:       "M4",
	Patterns:   []string{"*.m4", "*.ac", "configure.in"},
	Extensions: []string{"m4", "ac"},
	Kinds: []KindInfo{
		{Kind: KindMacro, Enabled: true, Letter: 'd', Name: "macro", Description: "macros"},
		{Kind: KindVariable, Enabled: true, Letter: 'v', Name: "variable", Description: "variables"},
	},
}

// KindInfo returns the description of k. Unknown kinds get a zero KindInfo with a "?" letter.
func (d Definition) KindInfo(k Kind) KindInfo {
	for _, info := range d.Kinds {
		if info.Kind == k {
			return info
		}
	}

	return KindInfo{Kind: k, Letter: '?', Name: "unknown"}
}

// ParseKind returns the kind with the given short name or display letter.
func (d Definition) ParseKind(s string) (Kind, error) {
	for _, info := range d.Kinds {
		if s == info.Name || (len(s) == 1 && s[0] == info.Letter) {
			return info.Kind, nil
		}
	}

	return 0, fmt.Errorf("unknown %s tag kind %q", d.Name, s)
}

// Matches reports whether the file name is claimed by the scanner, either by
// one of the glob patterns or by its extension. Only the base name is checked.
func (d Definition) Matches(filename string) bool {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))

	for _, p := range d.Patterns {
		if ok, _ := path.Match(p, base); ok {
			return true
		}
	}

	ext := path.Ext(base)
	if ext == "" {
		return false
	}

	for _, e := range d.Extensions {
		if strings.EqualFold(ext[1:], e) {
			return true
		}
	}

	return false
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := Parser.ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = kind
	return nil
}
