package ner

import "github.com/bd-address-extractor/app/models"

// BIO label set of the trained sequence-labeling model. Division is not a
// model label; it is always inferred from the district through the
// geographic hierarchy.
var labels = []string{
	"O",
	"B-HOUSE", "I-HOUSE",
	"B-ROAD", "I-ROAD",
	"B-AREA", "I-AREA",
	"B-DISTRICT", "I-DISTRICT",
	"B-POSTAL", "I-POSTAL",
	"B-FLAT", "I-FLAT",
	"B-FLOOR", "I-FLOOR",
	"B-BLOCK", "I-BLOCK",
}

var labelComponents = map[string]models.AddressComponent{
	"HOUSE":    models.ComponentHouse,
	"ROAD":     models.ComponentRoad,
	"AREA":     models.ComponentArea,
	"DISTRICT": models.ComponentDistrict,
	"POSTAL":   models.ComponentPostal,
	"FLAT":     models.ComponentFlat,
	"FLOOR":    models.ComponentFloor,
	"BLOCK":    models.ComponentBlock,
}

// NumLabels size of the model's output dimension.
func NumLabels() int { return len(labels) }

// splitLabel separates the BIO prefix from the component tag. Returns
// begin=true for B- labels; ok=false for "O".
func splitLabel(idx int) (component models.AddressComponent, begin, ok bool) {
	if idx <= 0 || idx >= len(labels) {
		return "", false, false
	}
	l := labels[idx]
	c, known := labelComponents[l[2:]]
	if !known {
		return "", false, false
	}
	return c, l[0] == 'B', true
}
