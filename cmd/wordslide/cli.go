package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wordslide"
)

// Export formats accepted by --format.
const (
	FormatText = "txt"
	FormatXML  = "xml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Sites     map[wordslide.Source]wordslide.Site
	Importers map[wordslide.Source]wordslide.Importer
	SlideSets wordslide.SlideSetService
	NewWriter func(format, path string) (wordslide.SlideSetWriter, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool   `short:"v" help:"Log debug output to stderr"`
	SitesFile string `name:"sites-file" type:"path" help:"YAML delimiter-table overrides (default $WORDSLIDE_SITES)"`

	Import ImportCmd `cmd:"" help:"Import a hymn from a web site or a legacy presentation file"`
	List   ListCmd   `cmd:"" help:"List slide sets in the library"`
	Show   ShowCmd   `cmd:"" help:"Print a slide set from the library"`
	Delete DeleteCmd `cmd:"" help:"Delete a slide set from the library"`
	Sites  SitesCmd  `cmd:"" help:"Print the effective delimiter tables"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Source    string        `arg:"" help:"Source to import from (site-a, site-b, legacy or a configured site)"`
	Query     string        `arg:"" help:"Hymn title, page address or presentation file path"`
	Save      bool          `short:"s" help:"Store the slide set in the library"`
	Out       string        `short:"o" type:"path" help:"Write the slide set to a file or directory"`
	Format    string        `short:"f" enum:"txt,xml" default:"txt" help:"Output format (txt, xml)"`
	Timeout   time.Duration `default:"10s" help:"HTTP request timeout"`
	RateLimit float64       `name:"rate-limit" default:"0" help:"Requests per second per host (0 disables pacing)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `help:"Only list slide sets from this source"`
	Limit  int    `short:"n" default:"0" help:"Maximum number of slide sets (0 for all)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Slide set ID"`
	Format string `short:"f" enum:"txt,xml" default:"txt" help:"Output format (txt, xml)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Slide set ID"`
	Force bool   `help:"Confirm deletion"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}
