package main

import (
	"fmt"

	"github.com/fwojciec/wordslide"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := wordslide.SlideSetFilter{Limit: c.Limit}
	if c.Source != "" {
		source := wordslide.Source(c.Source)
		filter.Source = &source
	}

	sets, err := deps.SlideSets.FindSlideSets(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordslide.ErrorMessage(err))
		return err
	}

	if len(sets) == 0 {
		fmt.Fprintln(deps.Stdout, "No slide sets found. Use 'wordslide import --save' to add one.")
		return nil
	}

	for _, s := range sets {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d texts\n", s.ID, s.Name, s.Source, len(s.Texts))
	}

	return nil
}
