package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/javadts"
	"github.com/fwojciec/javadts/batch"
	"github.com/fwojciec/javadts/fs"
	"github.com/fwojciec/javadts/goquery"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.Index {
		var err error
		urls, err = expandIndexes(deps, urls)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stderr, "  Found %d type pages\n", len(urls))
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case batch.ProgressCompleted:
			if c.Progress {
				fmt.Fprintf(deps.Stderr, "  [%d/%d] %s\n", event.Completed, event.Total, TruncateURL(event.URL, 60))
			}
		}
	}

	results, err := deps.Runner.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var decls []*javadts.Declaration
	var sources []string
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		decls = append(decls, r.Declaration)
		sources = append(sources, r.URL)
	}

	if c.Out != "" {
		if err := save(deps, c.Out, decls); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stderr, "  Saved %d declarations to %s\n", len(decls), c.Out)
	} else {
		fmt.Fprint(deps.Stdout, javadts.FormatDeclarations(decls, sources))
	}

	if failed := batch.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(results))
	}
	return nil
}

// save writes decls to dir, keeping dir untouched if any write fails.
func save(deps *Dependencies, dir string, decls []*javadts.Declaration) error {
	dir = filepath.Clean(dir)
	store := fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir))
	for _, d := range decls {
		if err := store.Save(deps.Ctx, d); err != nil {
			_ = store.Abort()
			return err
		}
	}
	return store.Commit()
}

// expandIndexes replaces each index or package page URL with the type
// page URLs it links to.
func expandIndexes(deps *Dependencies, urls []string) ([]string, error) {
	var out []string
	for _, u := range urls {
		html, err := deps.Fetcher.Fetch(deps.Ctx, u)
		if err != nil {
			return nil, fmt.Errorf("fetch index %s: %w", u, err)
		}
		links, err := goquery.ClassLinks(html, u)
		if err != nil {
			return nil, err
		}
		out = append(out, links...)
	}
	if len(out) == 0 {
		return nil, javadts.Errorf(javadts.EINVALID, "no type pages linked from %d index pages", len(urls))
	}
	return batch.Dedupe(out), nil
}
