package mock

import "github.com/fwojciec/javadts"

var _ javadts.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of javadts.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*javadts.Page, error)
}

func (e *Extractor) Extract(html string) (*javadts.Page, error) {
	return e.ExtractFn(html)
}
