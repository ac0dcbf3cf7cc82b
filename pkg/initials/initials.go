// Package initials reduces a free-text list of author names to a compact
// dotted-hyphenated initials string: authors are separated by commas,
// compound surnames by hyphens, and every name part contributes one initial.
// Name particles (von, de, Mac...), quoted nicknames, and apostrophe
// constructs get special treatment.
package initials

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	sep   = "."
	hyph  = "-"
	comma = ","
)

// quotedNickname matches a balanced double-quoted substring. An unpaired
// quote never matches, so it cannot swallow the rest of the line.
var quotedNickname = regexp.MustCompile(`"(?:\\.|[^"\\])*"`)

// bySep splits a barrel into name parts on whitespace and dot runs.
var bySep = regexp.MustCompile(`[\s.]+`)

// particles are lowercase name particles that keep their first letter
// lowercase in the initials, Latin and Cyrillic alike.
var particles = map[string]bool{
	"von": true, "фон": true,
	"van": true, "ван": true,
	"der": true, "дер": true,
	"til": true, "тиль": true,
	"zu": true, "цу": true,
	"zum": true, "цум": true,
	"zur": true, "цур": true,
	"af": true, "аф": true,
	"of": true, "из": true,
	"da": true, "да": true,
	"de": true, "де": true,
	"des": true, "дез": true,
	"del": true, "дель": true,
	"di": true, "ди": true,
	"dos": true, "душ": true, "дос": true,
	"du": true, "дю": true,
	"la": true, "ла": true, "ля": true,
	"le": true, "ле": true,
	"haut": true, "от": true,
	"the": true,
}

// honorifics pass through as recognized tokens; the full Cyrillic forms
// abbreviate to their two-letter equivalents.
var honorifics = map[string]string{
	"Старший": "Ст",
	"Младший": "Мл",
	"Ст":      "Ст",
	"ст":      "ст",
	"Sr":      "Sr",
	"Мл":      "Мл",
	"мл":      "мл",
	"Jr":      "Jr",
}

// Format reduces a comma-separated list of authors to initials.
//
// Format("John Ronald Reuel Tolkien") returns "J.R.R.T." and
// Format(`Harry "Bing" Crosby, Kris "Tanto" Paronto`) returns "H.C.,K.P.".
func Format(authors string) string {
	cleaned := strings.ReplaceAll(quotedNickname.ReplaceAllString(authors, " "), `"`, " ")

	var out []string
	for _, author := range strings.Split(cleaned, comma) {
		if blank(author, sep, hyph) {
			continue
		}
		var barrels []string
		for _, barrel := range strings.Split(author, hyph) {
			if blank(barrel, sep) {
				continue
			}
			var parts []string
			for _, name := range bySep.Split(barrel, -1) {
				if name == "" {
					continue
				}
				parts = append(parts, formInitial(name))
			}
			barrels = append(barrels, strings.Join(parts, sep))
		}
		out = append(out, strings.Join(barrels, hyph)+sep)
	}
	return strings.Join(out, comma)
}

// blank reports whether s is nothing but whitespace and the given
// punctuation strings.
func blank(s string, punct ...string) bool {
	for _, p := range punct {
		s = strings.ReplaceAll(s, p, "")
	}
	return strings.TrimSpace(s) == ""
}

// formInitial computes the single initial unit for one name part.
func formInitial(name string) string {
	// Apostrophe constructs. A lowercase letter right after the apostrophe
	// means irregular capitalization ("O'connor"-style), normalized to the
	// leading letter alone; otherwise the construct survives intact, as in
	// "D'Artagnan" -> "D'A".
	if cut := strings.Split(name, "'"); len(cut) > 1 && cut[1] != "" {
		after := []rune(cut[1])
		if unicode.IsLower(after[0]) && cut[0] != "" {
			return upperFirst(cut[0])
		}
		return cut[0] + "'" + string(after[0])
	}

	runes := []rune(name)
	if len(runes) > 1 {
		if h, ok := honorifics[name]; ok {
			return h
		}
		// Capitalization prefixes: "McConnell" -> "McC", "dinAlt" -> "dinA".
		prefix := string(runes[0])
		for _, r := range runes[1:] {
			prefix += string(r)
			if unicode.IsUpper(r) {
				return prefix
			}
		}
	}

	if particles[name] {
		return string(runes[0])
	}
	return upperFirst(name)
}

func upperFirst(s string) string {
	r := []rune(s)
	return strings.ToUpper(string(r[0]))
}
