package main

import (
	"fmt"

	"github.com/fwojciec/wordslide"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wordslide.Errorf(wordslide.EINVALID, "use --force to confirm deletion")
	}

	set, err := deps.SlideSets.FindSlideSetByID(deps.Ctx, c.ID)
	if wordslide.ErrorCode(err) == wordslide.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: slide set %q not found. Use 'wordslide list' to see stored sets.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordslide.ErrorMessage(err))
		return err
	}

	if err := deps.SlideSets.DeleteSlideSet(deps.Ctx, set.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordslide.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted slide set %q\n", set.Name)
	return nil
}
