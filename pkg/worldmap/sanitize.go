package worldmap

import "strings"

// labelEscaper replaces the characters Mermaid would read as syntax inside a
// quoted label. None of the replacements contains a character escaped by a
// later rule, so a single pass gives the same result as applying them in
// order.
var labelEscaper = strings.NewReplacer(
	`"`, "#quot;",
	"&", "#amp;",
	"<", "#lt;",
	">", "#gt;",
	"|", "#124;",
)

// Sanitize escapes s for use as a Mermaid node label.
func Sanitize(s string) string {
	return labelEscaper.Replace(s)
}
