package search

// Entry is the searchable projection of a deal. It is also the JSON shape
// embedded into every page for the browser-side search.
type Entry struct {
	Company  string `json:"company"`
	Category string `json:"category"`
	Benefit  string `json:"benefit"`
	Slug     string `json:"slug"`
	URL      string `json:"url"`
}

// Compile-time interface check.
var _ Record = Entry{}

// Primary implements Record.
func (e Entry) Primary() string { return e.Company }

// Secondary implements Record.
func (e Entry) Secondary() string { return e.Category }

// Tertiary implements Record.
func (e Entry) Tertiary() string { return e.Benefit }

// Records converts entries to the interface slice Search takes.
func Records(entries []Entry) []Record {
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out
}
