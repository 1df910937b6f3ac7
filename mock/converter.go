package mock

import "github.com/fwojciec/javadts"

var _ javadts.Converter = (*Converter)(nil)

// Converter is a mock implementation of javadts.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
