package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/wordslide"
	"github.com/fwojciec/wordslide/etree"
	"github.com/fwojciec/wordslide/fs"
	"github.com/fwojciec/wordslide/sqlite"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	importer, ok := deps.Importers[wordslide.Source(c.Source)]
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown source %q. Use 'wordslide sites' to see configured sites.\n", c.Source)
		return wordslide.Errorf(wordslide.EINVALID, "unknown source %q", c.Source)
	}

	set, err := importer.Import(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", importFailure(err))
		return err
	}

	if c.Save {
		if err := save(deps, set); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordslide.ErrorMessage(err))
			return err
		}
	}

	if c.Out != "" {
		w, err := deps.NewWriter(c.Format, c.Out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordslide.ErrorMessage(err))
			return err
		}
		if err := w.WriteSlideSet(deps.Ctx, set); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordslide.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %q to %s\n", set.Name, c.Out)
	}

	if !c.Save && c.Out == "" {
		return printSlideSet(deps.Stdout, set, c.Format)
	}
	return nil
}

// save stores set unless the library already holds the same content.
func save(deps *Dependencies, set *wordslide.SlideSet) error {
	hash := sqlite.HashContent(set)
	existing, err := deps.SlideSets.FindSlideSets(deps.Ctx, wordslide.SlideSetFilter{ContentHash: &hash, Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Fprintf(deps.Stdout, "%q is already in the library as %s\n", set.Name, existing[0].ID)
		return nil
	}

	if err := deps.SlideSets.CreateSlideSet(deps.Ctx, set); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %q as %s (%d texts)\n", set.Name, set.ID, len(set.Texts))
	return nil
}

// importFailure returns the message shown to the user for a failed import.
func importFailure(err error) string {
	switch wordslide.ErrorCode(err) {
	case wordslide.ENOTFOUND:
		return "could not find that title"
	case wordslide.EDELIMITER:
		return "site structure changed, importer needs an update"
	case wordslide.EINVALID:
		return wordslide.ErrorMessage(err)
	}
	return "import failed"
}

// printSlideSet writes set to w in the given format.
func printSlideSet(w io.Writer, set *wordslide.SlideSet, format string) error {
	if format == FormatXML {
		doc := etree.Document(set)
		doc.Indent(2)
		_, err := doc.WriteTo(w)
		return err
	}
	_, err := io.WriteString(w, fs.FormatSlideSet(set))
	return err
}
