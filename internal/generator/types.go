// Package generator builds and checks page maps: named, uniquely selectable
// landmark and interactive elements of an HTML document.
package generator

// Element kinds recorded in a page map.
const (
	KindHeading  = "heading"
	KindLink     = "link"
	KindButton   = "button"
	KindInput    = "input"
	KindSelect   = "select"
	KindTextarea = "textarea"
	KindForm     = "form"
	KindNav      = "nav"
	KindMain     = "main"
	KindRegion   = "region"
	KindImage    = "image"
)

// PageMap is the serialized form of a discovery run.
type PageMap struct {
	// Source names the document the map was generated from.
	Source string `yaml:"source"`
	// Root is the selector of the element the map was generated within.
	// Selectors are only unique inside it.
	Root string `yaml:"root,omitempty"`
	// Entries are the discovered elements, in discovery order.
	Entries []Entry `yaml:"entries"`
	// Skipped lists elements no unique selector was found for.
	Skipped []Skipped `yaml:"skipped,omitempty"`
}

// Entry is one named element.
type Entry struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`
	Selector string  `yaml:"selector"`
	Penalty  float64 `yaml:"penalty"`
	// Sample is a short excerpt of the element's text for manual checks.
	Sample string `yaml:"sample,omitempty"`
}

// Skipped records an element left out of the map.
type Skipped struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Reason string `yaml:"reason"`
}
