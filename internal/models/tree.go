package models

// Tree is a single tree row. The tree name is the natural key and is unique
// across all rows.
type Tree struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"tree"`
	Location              string  `json:"location"`
	HeightFt              float64 `json:"heightFt"`
	GroundCircumferenceFt float64 `json:"groundCircumferenceFt"`
}

// Validate returns one message per missing required field.
func (t *Tree) Validate() []string {
	var errs []string
	if t.Name == "" {
		errs = append(errs, "name is required")
	}
	if t.Location == "" {
		errs = append(errs, "location is required")
	}
	if t.HeightFt <= 0 {
		errs = append(errs, "height must be a positive number")
	}
	if t.GroundCircumferenceFt <= 0 {
		errs = append(errs, "size must be a positive number")
	}
	return errs
}

// TreeSummary is the projection returned by the list and search routes.
type TreeSummary struct {
	HeightFt float64 `json:"heightFt"`
	Name     string  `json:"tree"`
	ID       int64   `json:"id"`
}

// TreeRef is the minimal shape nested under an insect in joined listings.
type TreeRef struct {
	ID   int64  `json:"id"`
	Name string `json:"tree"`
}

// TreeWithInsects is one element of the eager /trees-insects listing.
type TreeWithInsects struct {
	ID       int64       `json:"id"`
	Name     string      `json:"tree"`
	Location string      `json:"location"`
	HeightFt float64     `json:"heightFt"`
	Insects  []InsectRef `json:"insects"`
}
