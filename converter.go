package javadts

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	// Used for member descriptions so inline code survives as backticks.
	Convert(html string) (string, error)
}
