package models

// GeoLevel administrative level in the Bangladesh hierarchy.
type GeoLevel string

const (
	LevelDivision GeoLevel = "division"
	LevelDistrict GeoLevel = "district"
	LevelUpazila  GeoLevel = "upazila"
	LevelUnion    GeoLevel = "union"
	LevelVillage  GeoLevel = "village"
)

// GazetteerEntry one area record from the address corpus. Built at startup,
// read-only afterwards.
type GazetteerEntry struct {
	AreaName          string `json:"area_name"`
	District          string `json:"district"`
	Division          string `json:"division"`
	PostalCode        string `json:"postal_code"`
	ObservedFrequency int    `json:"observed_frequency"`
}

// GeoNode node of the Division > District > Upazila > Union > Village tree.
// Parent is a lookup-only back reference.
type GeoNode struct {
	Level      GeoLevel   `json:"level"`
	Name       string     `json:"name"`
	PostalCode string     `json:"postal_code,omitempty"`
	Children   []*GeoNode `json:"children,omitempty"`
	Parent     *GeoNode   `json:"-"`
}

// Path names from the division root down to this node.
func (n *GeoNode) Path() []string {
	var rev []string
	for cur := n; cur != nil; cur = cur.Parent {
		rev = append(rev, cur.Name)
	}
	out := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}

// GeoLookup gazetteer lookup outcome handed to the resolver.
type GeoLookup struct {
	AreaName   string  `json:"area_name"`
	District   string  `json:"district"`
	Division   string  `json:"division"`
	PostalCode string  `json:"postal_code"`
	Confidence float64 `json:"confidence"`
}

// PostalPrediction hierarchy-derived postal code with the level that
// produced it.
type PostalPrediction struct {
	PostalCode string  `json:"postal_code"`
	Confidence float64 `json:"confidence"`
	Level      string  `json:"level"`
}

// Suggestion one ranked gazetteer completion for a query prefix.
type Suggestion struct {
	Area       string  `json:"area"`
	District   string  `json:"district"`
	Division   string  `json:"division"`
	PostalCode string  `json:"postal_code"`
	Confidence float64 `json:"confidence"`
}
