package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single lexical unit of gazette text with byte offsets
// into the source string (text[Start:End] == Text).
type Token struct {
	Text  string
	Start int
	End   int
}

// IsNewline reports whether the token is a run of line breaks.
// Line breaks are kept as tokens because several header patterns
// anchor on them; other whitespace is dropped during tokenization.
func (t Token) IsNewline() bool {
	for _, r := range t.Text {
		if r != '\n' && r != '\r' {
			return false
		}
	}
	return t.Text != ""
}

// IsPunct reports whether the token is a punctuation or symbol rune
func (t Token) IsPunct() bool {
	r, size := utf8.DecodeRuneInString(t.Text)
	if size != len(t.Text) {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// LikeNum reports whether the token looks like a numeric literal
func (t Token) LikeNum() bool {
	hasDigit := false
	for _, r := range t.Text {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return hasDigit
}

// IsUpper reports whether the token contains letters and none of them
// are lowercase (uncased runes such as "º" are ignored).
func (t Token) IsUpper() bool {
	hasLetter := false
	for _, r := range t.Text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// IsAlpha reports whether the token consists of letters only
func (t Token) IsAlpha() bool {
	if t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// RuneLen returns the number of runes in the token text
func (t Token) RuneLen() int {
	return utf8.RuneCountInString(t.Text)
}

// Lower returns the lowercase form of the token text
func (t Token) Lower() string {
	return strings.ToLower(t.Text)
}

// isJoiner reports whether r may appear inside a word token when
// directly followed by a letter or digit ("n.º", "Pós-Doutora").
func isJoiner(r rune) bool {
	return r == '.' || r == '-' || r == '\''
}

// Tokenize splits text into tokens. Words keep internal joiners,
// line-break runs become single tokens, other whitespace is skipped,
// and any remaining rune becomes a one-rune punctuation token.
func Tokenize(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == '\n' || r == '\r':
			j := i
			for j < len(text) {
				nr, ns := utf8.DecodeRuneInString(text[j:])
				if nr != '\n' && nr != '\r' {
					break
				}
				j += ns
			}
			tokens = append(tokens, Token{Text: text[i:j], Start: i, End: j})
			i = j
		case unicode.IsSpace(r):
			i += size
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			j := i + size
			for j < len(text) {
				nr, ns := utf8.DecodeRuneInString(text[j:])
				if unicode.IsLetter(nr) || unicode.IsDigit(nr) {
					j += ns
					continue
				}
				if isJoiner(nr) {
					fr, _ := utf8.DecodeRuneInString(text[j+ns:])
					if unicode.IsLetter(fr) || unicode.IsDigit(fr) {
						j += ns
						continue
					}
				}
				break
			}
			tokens = append(tokens, Token{Text: text[i:j], Start: i, End: j})
			i = j
		default:
			tokens = append(tokens, Token{Text: text[i : i+size], Start: i, End: i + size})
			i += size
		}
	}
	return tokens
}
