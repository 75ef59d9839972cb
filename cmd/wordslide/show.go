package main

import (
	"fmt"

	"github.com/fwojciec/wordslide"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	set, err := deps.SlideSets.FindSlideSetByID(deps.Ctx, c.ID)
	if wordslide.ErrorCode(err) == wordslide.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: slide set %q not found. Use 'wordslide list' to see stored sets.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordslide.ErrorMessage(err))
		return err
	}

	return printSlideSet(deps.Stdout, set, c.Format)
}
