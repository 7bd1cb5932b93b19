// Package ctags writes tags in the extended ctags file format.
package ctags

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Drolfothesgnir/m4tags/m4"
)

// Entry is a tag located in a file.
type Entry struct {
	Path string
	m4.Tag
}

// pseudo tags written at the top of every file
const header = "!_TAG_FILE_FORMAT\t2\t/extended format/\n" +
	"!_TAG_FILE_SORTED\t1\t/0=unsorted, 1=sorted, 2=foldcase/\n" +
	"!_TAG_PROGRAM_NAME\tm4tags\t//\n"

// escaper keeps every field on its line: the characters which delimit
// fields and lines are written the way universal-ctags escapes them.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

// Write sorts the entries by name, path and line, and writes them to w.
// Each line has the form: name<TAB>path<TAB>line;"<TAB>kind-letter.
// Backslashes, tabs and line breaks in names and paths are escaped.
func Write(w io.Writer, entries []Entry) error {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, compare)

	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(header); err != nil {
		return fmt.Errorf("cannot write ctags header: %w", err)
	}

	for _, e := range sorted {
		_, err := fmt.Fprintf(bw, "%s\t%s\t%d;\"\t%c\n", escaper.Replace(e.Name), escaper.Replace(e.Path), e.Line, e.Kind.Letter())
		if err != nil {
			return fmt.Errorf("cannot write tag %q: %w", e.Name, err)
		}
	}

	return bw.Flush()
}

func compare(a, b Entry) int {
	return cmp.Or(
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Line, b.Line),
	)
}
