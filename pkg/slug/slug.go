package slug

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make turns free text into a lowercase dash separated slug.
// Accents are folded ("Résumé 2024" -> "resume-2024"); other scripts are dropped.
func Make(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	slug := nonAlnum.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(slug, "-")
}

// ObjectKey builds a unique storage key under prefix that keeps a readable
// trace of the uploaded file name, e.g. "resumes/3f2a...-jane-doe-cv.pdf".
func ObjectKey(prefix, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	if !isSafeExt(ext) {
		ext = ""
	}
	base := Make(strings.TrimSuffix(originalName, path.Ext(originalName)))

	name := uuid.NewString()
	if base != "" {
		if len(base) > 60 {
			base = strings.Trim(base[:60], "-")
		}
		name += "-" + base
	}
	return strings.Trim(prefix, "/") + "/" + name + ext
}

func isSafeExt(ext string) bool {
	if len(ext) < 2 || len(ext) > 6 {
		return false
	}
	for _, r := range ext[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
