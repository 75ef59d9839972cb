package main

import (
	"fmt"

	"github.com/fwojciec/wordslide/yaml"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	data, err := yaml.MarshalSites(deps.Sites)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
