// Package filename turns arbitrary media titles into safe filenames
package filename

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength is the upper bound on a sanitized filename, in runes
const MaxLength = 200

// DefaultName is used when sanitization leaves nothing
const DefaultName = "audio"

// cyrillicToLatin maps Russian and Ukrainian letters to Latin sequences
var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e",
	'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k",
	'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "h", 'ц': "ts",
	'ч': "ch", 'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
	// Ukrainian
	'є': "ye", 'і': "i", 'ї': "yi", 'ґ': "g",
}

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	underscoreRuns = regexp.MustCompile(`_{2,}`)
	extensionRe    = regexp.MustCompile(`\.[^.]+$`)

	// strips combining marks left over after NFD decomposition
	diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Transliterate converts Cyrillic letters to their Latin equivalents,
// preserving the case of the original letter.
func Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		lower := unicode.ToLower(r)
		repl, ok := cyrillicToLatin[lower]
		if !ok {
			b.WriteRune(r)
			continue
		}
		if r != lower && repl != "" {
			b.WriteString(strings.ToUpper(repl[:1]) + repl[1:])
			continue
		}
		b.WriteString(repl)
	}

	return b.String()
}

// Sanitize transforms a title into a safe, bounded filename.
// The result contains no filesystem-reserved characters, never exceeds
// MaxLength runes and is never empty. Sanitize is idempotent.
func Sanitize(title string) string {
	s := Transliterate(title)

	if folded, _, err := transform.String(diacriticFolder, s); err == nil {
		s = folded
	}

	s = invalidChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	s = truncate(s, MaxLength)
	s = strings.Trim(s, "_")

	if s == "" {
		return DefaultName
	}
	return s
}

// truncate limits s to max runes, keeping a trailing extension if present
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}

	ext := extensionRe.FindString(s)
	extRunes := []rune(ext)
	if len(extRunes) >= max {
		ext = ""
		extRunes = nil
	}

	return string(r[:max-len(extRunes)]) + ext
}
