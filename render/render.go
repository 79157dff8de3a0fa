// Package render is the output boundary of the report pipeline: an ordered
// list of table sections handed to a layout sink. The sink owns pagination,
// fonts and right-to-left layout.
package render

// TableSection is one titled table of localized display strings.
type TableSection struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Renderer lays out a document from its sections. A partial render is a
// failure, not a silent success.
type Renderer interface {
	Render(title string, sections []TableSection) error
}
