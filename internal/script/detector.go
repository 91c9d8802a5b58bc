// Package script tags raw input as Latin, Bangla or Mixed so the normalizer
// can pick its digit and transliteration tables.
package script

// Script classification tag.
type Script string

const (
	Latin   Script = "latin"
	Bangla  Script = "bangla"
	Mixed   Script = "mixed"
	Unknown Script = "unknown"
)

// Bangla block U+0980..U+09FF.
const (
	banglaLo = 0x0980
	banglaHi = 0x09FF
)

// Detection result with the raw ratios that produced the tag.
type Detection struct {
	Script      Script
	BanglaRatio float64
	LatinRatio  float64
}

// IsMixed reports whether both scripts contribute meaningfully.
func (d Detection) IsMixed() bool { return d.Script == Mixed }

// mixedThreshold: both scripts above this ratio of letter characters means
// the input is mixed.
const mixedThreshold = 0.3

// Detect classifies s by counting letters per script. Digits, punctuation
// and whitespace are ignored. Empty or letterless input yields Unknown.
func Detect(s string) Detection {
	var bangla, latin int
	for _, r := range s {
		switch {
		case r >= banglaLo && r <= banglaHi:
			bangla++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}
	total := bangla + latin
	if total == 0 {
		return Detection{Script: Unknown}
	}
	d := Detection{
		BanglaRatio: float64(bangla) / float64(total),
		LatinRatio:  float64(latin) / float64(total),
	}
	switch {
	case d.BanglaRatio > mixedThreshold && d.LatinRatio > mixedThreshold:
		d.Script = Mixed
	case d.BanglaRatio >= d.LatinRatio:
		d.Script = Bangla
	default:
		d.Script = Latin
	}
	return d
}
