package models

// Insect is a single insect row. Name is the unique natural key; the other
// five business attributes are required at creation time.
type Insect struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fact        string  `json:"fact"`
	Territory   string  `json:"territory"`
	Millimeters float64 `json:"millimeters"`
}

// Validate returns one message per missing required field. An insect with an
// empty slice result is safe to persist.
func (i *Insect) Validate() []string {
	var errs []string
	if i.Name == "" {
		errs = append(errs, "name is required")
	}
	if i.Description == "" {
		errs = append(errs, "description is required")
	}
	if i.Fact == "" {
		errs = append(errs, "fact is required")
	}
	if i.Territory == "" {
		errs = append(errs, "territory is required")
	}
	if i.Millimeters <= 0 {
		errs = append(errs, "millimeters must be a positive number")
	}
	return errs
}

// InsectSummary is the projection returned by the insect list route.
type InsectSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Millimeters float64 `json:"millimeters"`
}

// InsectRef is the minimal shape nested under a tree in joined listings.
type InsectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// InsectWithTrees is one element of the lazy /insects-trees listing.
type InsectWithTrees struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Trees       []TreeRef `json:"trees"`
}
