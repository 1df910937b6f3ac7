package javadts

// Extractor locates the identity, inheritance and member tables of a
// documentation page.
type Extractor interface {
	// Extract parses raw HTML and returns the page structure.
	// Missing member tables are not an error; a missing title is EINVALID.
	Extract(html string) (*Page, error)
}
