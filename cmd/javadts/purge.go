package main

import "fmt"

// Run executes the purge command.
func (c *PurgeCmd) Run(deps *Dependencies) error {
	if deps.Cache == nil {
		return fmt.Errorf("no cache configured. Set JAVADTS_CACHE or pass --cache")
	}

	n, err := deps.Cache.Purge(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Removed %d expired pages\n", n)
	return nil
}
