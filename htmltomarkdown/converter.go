// Package htmltomarkdown implements javadts.Converter using
// JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/javadts"
)

// Ensure Converter implements javadts.Converter at compile time.
var _ javadts.Converter = (*Converter)(nil)

// Converter renders Javadoc description cells as Markdown for doc
// comments.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms the inner HTML of a description cell into Markdown.
// The "div.block" wrappers Javadoc puts around descriptions are unwrapped
// and relative links, which point into the Javadoc tree, keep only their
// text. A cell holding nothing but "&nbsp;" converts to "".
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", javadts.Errorf(javadts.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	body := doc.Find("body")
	if strings.TrimSpace(body.Text()) == "" {
		return "", nil
	}

	body.Find("div.block").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithSelection(s.Contents())
	})
	body.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); !isAbsolute(href) {
			s.ReplaceWithSelection(s.Contents())
		}
	})

	inner, err := body.Html()
	if err != nil {
		return "", err
	}
	result, err := c.conv.ConvertString(inner)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

func isAbsolute(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
