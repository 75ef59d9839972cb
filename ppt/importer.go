package ppt

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wordslide"
)

// Ensure Importer implements wordslide.Importer at compile time.
var _ wordslide.Importer = (*Importer)(nil)

// Importer builds a single-text slide set from a legacy presentation file.
// It is a best-effort fallback: the text is not split into verses.
type Importer struct{}

// NewImporter creates a new Importer.
func NewImporter() *Importer {
	return &Importer{}
}

// Import scans the file at path. Only a failure to open the file is
// reported; malformed content yields whatever text could be recovered.
// The set is named after the first recovered fragment, falling back to the
// file name.
func (i *Importer) Import(ctx context.Context, path string) (*wordslide.SlideSet, error) {
	if strings.TrimSpace(path) == "" {
		return nil, wordslide.Errorf(wordslide.EINVALID, "file path required")
	}
	if err := ctx.Err(); err != nil {
		return nil, wordslide.WrapError(wordslide.EINTERNAL, err, "import %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, wordslide.WrapError(wordslide.EINTERNAL, err, "open %s", path)
	}
	defer f.Close()

	rec := Scan(bufio.NewReader(f))

	name := rec.Title()
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	set := &wordslide.SlideSet{
		Name:      name,
		Source:    wordslide.SourceLegacy,
		SourceURL: path,
	}
	if err := set.Reserve(1, 0); err != nil {
		return nil, err
	}
	if err := set.SetText(0, rec.Text, 0); err != nil {
		return nil, err
	}
	return set, nil
}
