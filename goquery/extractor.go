// Package goquery implements javadts.Extractor for Javadoc HTML pages
// using PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/javadts"
)

// Ensure Extractor implements javadts.Extractor at compile time.
var _ javadts.Extractor = (*Extractor)(nil)

// Extractor reads the identity, inheritance edges and member summary
// tables of a Javadoc page. It is safe for concurrent use.
type Extractor struct {
	converter javadts.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConverter renders description cells through c instead of taking
// their plain text. Inline code then survives as Markdown backticks.
func WithConverter(c javadts.Converter) Option {
	return func(e *Extractor) {
		e.converter = c
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns the page structure. Missing member
// tables yield nil row slices. A page without a title is EINVALID.
func (e *Extractor) Extract(html string) (*javadts.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, javadts.Errorf(javadts.EINVALID, "failed to parse HTML: %v", err)
	}

	title := doc.Find(titleSelector).First()
	if title.Length() == 0 {
		return nil, javadts.Errorf(javadts.EINVALID, "page has no %q element", titleSelector)
	}
	name, kind := parseTitle(title.Text())
	if name == "" {
		return nil, javadts.Errorf(javadts.EINVALID, "page title is empty")
	}

	page := &javadts.Page{
		Identity: javadts.Identity{
			Key:  inheritanceKey(doc),
			Name: name,
			Kind: kind,
		},
		Extends: extends(doc, name),
	}

	page.Constructors = e.constructorRows(summaryTable(doc, ConstructorSummary))
	page.EnumConstants = e.rows(summaryTable(doc, EnumConstantSummary))
	page.Fields = e.rows(summaryTable(doc, FieldSummary))
	page.Methods = e.rows(summaryTable(doc, MethodSummary))

	return page, nil
}

// parseTitle strips the kind prefix from a page title.
func parseTitle(text string) (string, javadts.Kind) {
	text = normalizeSpace(text)
	for _, p := range titlePrefixes {
		if name, ok := strings.CutPrefix(text, p.prefix); ok {
			return strings.TrimSpace(name), p.kind
		}
	}
	return text, javadts.KindClass
}

// inheritanceKey returns the text of the last breadcrumb node with line
// breaks removed.
func inheritanceKey(doc *goquery.Document) string {
	text := doc.Find(inheritanceSelector).Last().Text()
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", "")
	return strings.TrimSpace(text)
}

// extends collects the element texts next to the type name label, which
// name the supertypes in the declaration line.
func extends(doc *goquery.Document, name string) []string {
	var names []string
	doc.Find(typeNameLabelSelector).First().Parent().Children().Each(func(_ int, s *goquery.Selection) {
		n := normalizeSpace(s.Text())
		if n == "" || n == name || n == "Enum" || strings.HasPrefix(n, "@") {
			return
		}
		names = append(names, n)
	})
	return names
}

// summaryTable returns the member summary tables whose summary attribute
// equals summary.
func summaryTable(doc *goquery.Document, summary string) *goquery.Selection {
	return doc.Find(memberSummarySelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("summary")
		return v == summary
	})
}

func (e *Extractor) rows(table *goquery.Selection) []javadts.Row {
	var rows []javadts.Row
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, javadts.Row{
			First:  normalizeSpace(tr.Find(colFirst).Text()),
			Second: normalizeSpace(tr.Find(colSecond).Text()),
			Last:   e.description(tr.Find(colLast)),
		})
	})
	return rows
}

// constructorRows reads only the rows that carry a constructor name cell.
func (e *Extractor) constructorRows(table *goquery.Selection) []javadts.Row {
	var rows []javadts.Row
	table.Find("tr").Has(colConstructorName).Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, javadts.Row{
			Code: normalizeSpace(tr.Find(colConstructorName).Find("code").Text()),
			Last: e.description(tr.Find(colLast)),
		})
	})
	return rows
}

// description returns the text of a description cell, converted to
// Markdown when a converter is set. Conversion failures fall back to the
// plain text.
func (e *Extractor) description(cell *goquery.Selection) string {
	text := cell.Text()
	if e.converter == nil || cell.Length() == 0 {
		return text
	}
	inner, err := cell.Html()
	if err != nil {
		return text
	}
	md, err := e.converter.Convert(inner)
	if err != nil || strings.TrimSpace(md) == "" {
		return text
	}
	return md
}

// normalizeSpace collapses runs of ASCII whitespace into one space and
// trims the result. Non-breaking spaces are kept because they separate
// parameter types from names.
func normalizeSpace(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			return true
		}
		return false
	})
	return strings.Join(fields, " ")
}
