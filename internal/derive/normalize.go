package derive

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// packageExtensions are stripped once from the end of a process name
var packageExtensions = []string{
	".exe", ".msi", ".app", ".dmg", ".pkg", ".appimage", ".deb", ".rpm", ".lnk",
}

// architectureMarkers are dropped as whole tokens
var architectureMarkers = map[string]struct{}{
	"32bit": {}, "64bit": {}, "x86": {}, "x64": {},
	"amd64": {}, "arm64": {}, "win32": {}, "win64": {},
}

// noiseWords are installer and edition qualifiers dropped as whole tokens
var noiseWords = map[string]struct{}{
	"setup": {}, "installer": {}, "install": {}, "portable": {},
	"beta": {}, "alpha": {}, "rc": {}, "pro": {}, "premium": {},
	"trial": {}, "free": {}, "edition": {}, "final": {}, "release": {},
	"update": {},
}

var (
	// innermost bracketed segment, ASCII and full-width variants
	bracketedSegment = regexp.MustCompile(`[(\[{（［｛【「『〔][^()\[\]{}（）［］｛｝【】「」『』〔〕]*[)\]}）］｝】」』〕]`)

	versionToken = regexp.MustCompile(`^(v[0-9]+(\.[0-9]+)*|[0-9]+(\.[0-9]+)+)$`)
	versionHead  = regexp.MustCompile(`^v?[0-9]+(\.[0-9]+)*$`)
	yearToken    = regexp.MustCompile(`^(19|20)[0-9]{2}$`)
)

// Normalize canonicalizes a raw process or executable name into an identity
// key. It is deterministic and idempotent; equivalent names differing only in
// case, width, packaging suffix, version or edition noise share a key.
// An empty result means the name carries no identity. Malformed UTF-8
// carries none either.
func Normalize(raw string) string {
	if raw == "" || !utf8.ValidString(raw) {
		return ""
	}

	s := foldCase(raw)
	s = strings.TrimSpace(s)
	s = stripPackageExtension(s)
	s = stripBracketed(s)

	kept := make([]string, 0, 4)
	for _, token := range tokenize(s) {
		kept = append(kept, filterToken(token)...)
	}

	// Every rune outside a token is punctuation or space, so joining the
	// surviving tokens with one space replaces and collapses them.
	return strings.Join(kept, " ")
}

// foldCase applies compatibility normalization and case folding, so
// full-width letters and brackets collapse onto their ASCII forms.
func foldCase(s string) string {
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	return norm.NFKC.String(s)
}

func stripPackageExtension(s string) string {
	for _, ext := range packageExtensions {
		if len(s) > len(ext) && strings.HasSuffix(s, ext) {
			return strings.TrimSuffix(s, ext)
		}
	}
	return s
}

func stripBracketed(s string) string {
	for {
		next := bracketedSegment.ReplaceAllString(s, " ")
		if next == s {
			return s
		}
		s = next
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// tokenize splits s into maximal runs of letters, digits and marks. A dot
// stays inside a token only while the token still reads as a version number
// and a digit follows.
func tokenize(s string) []string {
	runes := []rune(s)
	tokens := make([]string, 0, 4)
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			cur.WriteRune(r)
		case r == '.' && i+1 < len(runes) && isASCIIDigit(runes[i+1]) && versionHead.MatchString(cur.String()):
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// filterToken drops version, year, architecture and noise tokens. A dotted
// token that is not a full version is split at its dots and each part is
// judged on its own.
func filterToken(token string) []string {
	if versionToken.MatchString(token) {
		return nil
	}
	if strings.Contains(token, ".") {
		var out []string
		for _, part := range strings.Split(token, ".") {
			if part == "" {
				continue
			}
			out = append(out, filterToken(part)...)
		}
		return out
	}
	if yearToken.MatchString(token) {
		return nil
	}
	if _, ok := architectureMarkers[token]; ok {
		return nil
	}
	if _, ok := noiseWords[token]; ok {
		return nil
	}
	return []string{token}
}
