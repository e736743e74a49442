package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Section writes a "## title" section to w, only if body reports that it
// has something to show.
func Section(w io.Writer, title string, body func(io.Writer) bool) {
	var buf bytes.Buffer
	if !body(&buf) {
		return
	}
	fmt.Fprintf(w, "\n## %s\n\n", title)
	io.Copy(w, &buf)
}

// Table writes rows as a markdown table. The first column is left aligned,
// the others hold amounts and are right aligned.
func Table(w io.Writer, header []string, rows [][]string) {
	align := make([]string, len(header))
	for i := range align {
		align[i] = "---:"
	}
	if len(align) > 0 {
		align[0] = ":---"
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(w, "|%s|\n", strings.Join(align, "|"))
	for _, row := range rows {
		fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
	}
}
