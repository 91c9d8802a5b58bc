// Package tokenizer splits normalized address text into typed tokens with
// byte spans for the structural parser.
package tokenizer

import "unicode"

// Type classifies a token.
type Type string

const (
	Numeric     Type = "numeric"
	Word        Type = "word"
	MixedAlnum  Type = "mixed_alnum"
	Punctuation Type = "punctuation"
)

// Token one classified run of the input. Start/End are byte offsets into
// the normalized text.
type Token struct {
	Text  string `json:"text"`
	Type  Type   `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// IsSeparator reports whether the token splits address segments.
func (t Token) IsSeparator() bool {
	return t.Type == Punctuation && (t.Text == "," || t.Text == ";")
}

func isWordRune(r rune) bool {
	// slashes and dashes glue sub-numbered values like 107/2 and ka-52
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '/' || r == '-'
}

// Tokenize walks the text once, grouping letter/digit runs (slash and dash
// included so "107/2" stays one token) and emitting single-rune punctuation
// tokens. Whitespace is discarded. Output length is proportional to input
// length; the function never fails.
func Tokenize(text string) []Token {
	var tokens []Token
	runes := []rune(text)
	byteAt := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		byteAt[i] = pos
		pos += len(string(r))
	}
	byteAt[len(runes)] = pos

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isWordRune(r):
			j := i
			hasLetter, hasDigit := false, false
			for j < len(runes) && isWordRune(runes[j]) {
				if unicode.IsLetter(runes[j]) {
					hasLetter = true
				}
				if unicode.IsDigit(runes[j]) {
					hasDigit = true
				}
				j++
			}
			tt := Word
			switch {
			case hasDigit && hasLetter:
				tt = MixedAlnum
			case hasDigit:
				tt = Numeric
			case !hasLetter:
				// bare slash or dash runs
				tt = Punctuation
			}
			tokens = append(tokens, Token{
				Text:  string(runes[i:j]),
				Type:  tt,
				Start: byteAt[i],
				End:   byteAt[j],
			})
			i = j
		default:
			tokens = append(tokens, Token{
				Text:  string(r),
				Type:  Punctuation,
				Start: byteAt[i],
				End:   byteAt[i+1],
			})
			i++
		}
	}
	return tokens
}
