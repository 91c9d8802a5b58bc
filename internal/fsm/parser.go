// Package fsm implements the structural parser: a fixed state machine over
// the token stream that assigns components from the positional conventions
// of Bangladeshi addresses (house, road, area, district, postal, in that
// order). Deliberately low precision, high coverage; it supplies fallback
// candidates when the specialized extractors find nothing.
package fsm

import (
	"regexp"
	"strings"

	"github.com/bd-address-extractor/app/models"
	"github.com/bd-address-extractor/internal/tokenizer"
)

type state int

const (
	stateStart state = iota
	stateExpectHouse
	stateExpectRoad
	stateExpectArea
	stateExpectDistrict
	stateExpectPostal
	stateEnd
)

const (
	keywordConfidence    = 0.75
	positionalConfidence = 0.70
)

var postalShape = regexp.MustCompile(`^\d{4}$`)

// Parser keyword and place tables. The district/area sets come from the
// geographic knowledge base at wiring time.
type Parser struct {
	houseKeywords map[string]bool
	roadKeywords  map[string]bool
	districts     map[string]bool
	areas         map[string]bool
}

// NewParser builds a parser over known district and area names.
func NewParser(districts, areas []string) *Parser {
	p := &Parser{
		houseKeywords: map[string]bool{
			"house": true, "holding": true, "plot": true, "bari": true, "basha": true,
		},
		roadKeywords: map[string]bool{
			"road": true, "lane": true, "avenue": true, "street": true, "sarani": true,
		},
		districts: make(map[string]bool, len(districts)),
		areas:     make(map[string]bool, len(areas)),
	}
	for _, d := range districts {
		p.districts[strings.ToLower(d)] = true
	}
	for _, a := range areas {
		p.areas[strings.ToLower(a)] = true
	}
	return p
}

// Parse walks the token stream through the state machine. Unrecognized
// tokens are skipped without consuming state; the parser never fails, at
// worst it emits nothing.
func (p *Parser) Parse(tokens []tokenizer.Token) []models.Candidate {
	var out []models.Candidate
	st := stateStart
	if len(tokens) > 0 {
		st = stateExpectHouse
	}

	for i := 0; i < len(tokens) && st != stateEnd; i++ {
		tok := tokens[i]
		lower := strings.ToLower(tok.Text)

		switch st {
		case stateExpectHouse:
			if p.houseKeywords[lower] {
				if val, end, ok := numberAfter(tokens, i); ok {
					out = append(out, candidate(models.ComponentHouse, val, tok.Start, end, keywordConfidence))
					st = stateExpectRoad
					continue
				}
			}
			// leading bare number reads as a house number
			if i == 0 && (tok.Type == tokenizer.Numeric || tok.Type == tokenizer.MixedAlnum) && !postalShape.MatchString(tok.Text) {
				out = append(out, candidate(models.ComponentHouse, tok.Text, tok.Start, tok.End, positionalConfidence))
				st = stateExpectRoad
			}
			fallthrough
		case stateExpectRoad:
			if st == stateExpectRoad && p.roadKeywords[lower] {
				if val, end, ok := numberAfter(tokens, i); ok {
					out = append(out, candidate(models.ComponentRoad, val, tok.Start, end, keywordConfidence))
					st = stateExpectArea
					continue
				}
			}
			fallthrough
		case stateExpectArea:
			if st <= stateExpectArea && tok.Type == tokenizer.Word && p.areas[lower] {
				out = append(out, candidate(models.ComponentArea, tok.Text, tok.Start, tok.End, keywordConfidence))
				st = stateExpectDistrict
				continue
			}
			fallthrough
		case stateExpectDistrict:
			if st <= stateExpectDistrict {
				if tok.Type == tokenizer.Word && p.districts[lower] {
					out = append(out, candidate(models.ComponentDistrict, tok.Text, tok.Start, tok.End, keywordConfidence))
					st = stateExpectPostal
					continue
				}
				// "Dhaka-1216" arrives as one mixed token
				if tok.Type == tokenizer.MixedAlnum {
					if dist, postal, ok := splitCityPostal(tok.Text); ok && p.districts[strings.ToLower(dist)] {
						out = append(out,
							candidate(models.ComponentDistrict, dist, tok.Start, tok.End, keywordConfidence),
							candidate(models.ComponentPostal, postal, tok.Start, tok.End, keywordConfidence))
						st = stateEnd
						continue
					}
				}
			}
			fallthrough
		case stateExpectPostal:
			if tok.Type == tokenizer.Numeric && postalShape.MatchString(tok.Text) {
				out = append(out, candidate(models.ComponentPostal, tok.Text, tok.Start, tok.End, keywordConfidence))
				st = stateEnd
			}
		}
	}
	return out
}

// numberAfter finds the next numeric-ish token within two positions,
// skipping separators and filler words like "no".
func numberAfter(tokens []tokenizer.Token, i int) (string, int, bool) {
	for j := i + 1; j < len(tokens) && j <= i+3; j++ {
		tok := tokens[j]
		lower := strings.ToLower(tok.Text)
		if tok.Type == tokenizer.Punctuation || lower == "no" || lower == "number" {
			continue
		}
		if tok.Type == tokenizer.Numeric || tok.Type == tokenizer.MixedAlnum {
			return tok.Text, tok.End, true
		}
		return "", 0, false
	}
	return "", 0, false
}

func splitCityPostal(text string) (string, string, bool) {
	parts := strings.SplitN(text, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	if !postalShape.MatchString(parts[1]) {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func candidate(c models.AddressComponent, value string, start, end int, conf float64) models.Candidate {
	return models.Candidate{
		Component:  c,
		Value:      value,
		Span:       &models.Span{Start: start, End: end},
		Confidence: conf,
		Source:     models.SourceStructural,
	}
}
