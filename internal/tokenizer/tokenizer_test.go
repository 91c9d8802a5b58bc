package tokenizer

import "testing"

func TestTokenize_Types(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "simple address segment",
			input: "House 12,",
			want: []Token{
				{Text: "House", Type: Word, Start: 0, End: 5},
				{Text: "12", Type: Numeric, Start: 6, End: 8},
				{Text: ",", Type: Punctuation, Start: 8, End: 9},
			},
		},
		{
			name:  "sub-numbered house stays one token",
			input: "107/2",
			want: []Token{
				{Text: "107/2", Type: Numeric, Start: 0, End: 5},
			},
		},
		{
			name:  "city dash postal is mixed",
			input: "Dhaka-1216",
			want: []Token{
				{Text: "Dhaka-1216", Type: MixedAlnum, Start: 0, End: 10},
			},
		},
		{
			name:  "bare slash is punctuation",
			input: "a / b",
			want: []Token{
				{Text: "a", Type: Word, Start: 0, End: 1},
				{Text: "/", Type: Punctuation, Start: 2, End: 3},
				{Text: "b", Type: Word, Start: 4, End: 5},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d: %+v", tc.input, len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestTokenize_ByteOffsets(t *testing.T) {
	// multibyte input must produce byte offsets that slice correctly
	input := "মিরপুর, Dhaka"
	for _, tok := range Tokenize(input) {
		if input[tok.Start:tok.End] != tok.Text {
			t.Errorf("span [%d:%d] = %q, token text %q", tok.Start, tok.End, input[tok.Start:tok.End], tok.Text)
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %+v, want none", got)
	}
	if got := Tokenize("   "); len(got) != 0 {
		t.Errorf("Tokenize(whitespace) = %+v, want none", got)
	}
}

func TestToken_IsSeparator(t *testing.T) {
	tokens := Tokenize("Mirpur, Dhaka; 1216")
	var separators int
	for _, tok := range tokens {
		if tok.IsSeparator() {
			separators++
		}
	}
	if separators != 2 {
		t.Errorf("got %d separators, want 2", separators)
	}
}
