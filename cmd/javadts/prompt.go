package main

import (
	"bufio"
	"fmt"
	"strings"
)

// Run executes the prompt command. It converts one URL per input line and
// returns at end of input. Failed pages are reported and the loop goes on.
func (c *PromptCmd) Run(deps *Dependencies) error {
	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "Javadoc URL? ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}

		url := strings.TrimSpace(scanner.Text())
		if url == "" {
			fmt.Fprintln(deps.Stdout, "You must pass in a url")
			continue
		}

		results, err := deps.Runner.Run(deps.Ctx, []string{url}, nil)
		if err != nil {
			return err
		}
		if r := results[0]; r.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", r.Err)
			continue
		}
		fmt.Fprint(deps.Stdout, results[0].Declaration.String())
	}
}
