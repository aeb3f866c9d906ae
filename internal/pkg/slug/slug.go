package slug

import (
	"regexp"
	"strings"
)

// Turkish characters are folded to their ASCII counterparts before
// lowercasing so that "İ" becomes "i" and not the dotted form Unicode
// case mapping would produce.
var foldTable = strings.NewReplacer(
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ş", "s", "Ş", "s",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ç", "c", "Ç", "c",
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make builds a URL-safe slug from an arbitrary title. The result is
// deterministic and idempotent: Make(Make(s)) == Make(s).
func Make(s string) string {
	s = foldTable.Replace(s)
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
