package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/javadts"
)

// classLinkTitles are the title attribute prefixes Javadoc puts on links
// to type pages in package summaries and the all-classes index.
var classLinkTitles = []string{
	"class in ",
	"interface in ",
	"enum in ",
	"annotation in ",
}

// ClassLinks returns the absolute URLs of the type pages linked from an
// index or package summary page, in document order without duplicates.
// Fragments are dropped and links to other hosts are ignored.
func ClassLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, javadts.Errorf(javadts.EINVALID, "invalid base URL: %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, javadts.Errorf(javadts.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href][title]").Each(func(_ int, sel *goquery.Selection) {
		title, _ := sel.Attr("title")
		if !isClassTitle(title) {
			return
		}
		href, _ := sel.Attr("href")
		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})
	return links, nil
}

func isClassTitle(title string) bool {
	for _, prefix := range classLinkTitles {
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}

// resolveURL resolves href against base and drops any fragment.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	u := base.ResolveReference(ref)
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}
