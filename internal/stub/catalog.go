package stub

// Language is one supported-language record in the catalog.
type Language struct {
	Code string
	Name string
}

// Catalog serves the static supported-language list.
type Catalog struct {
	languages []Language
}

// NewCatalog creates a Catalog with the fixed demo languages.
func NewCatalog() *Catalog {
	return &Catalog{
		languages: []Language{
			{Code: "EN", Name: "English"},
			{Code: "JA", Name: "Japanese"},
			{Code: "FR", Name: "French"},
		},
	}
}

// Languages returns the catalog for the given direction. The same list is
// returned for both "source" and "target"; any other direction yields
// ErrInvalidType.
func (c *Catalog) Languages(direction string) ([]Language, error) {
	switch direction {
	case "source", "target":
		languages := make([]Language, len(c.languages))
		copy(languages, c.languages)
		return languages, nil
	default:
		return nil, ErrInvalidType
	}
}
