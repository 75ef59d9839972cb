// Package fs provides file-based export of slide sets.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/wordslide"
)

// Slug converts a slide set name to a file-safe base name.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func Slug(name string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := strings.TrimSuffix(sb.String(), "-")
	if result == "" {
		return "untitled"
	}
	return result
}

// FormatSlideSet formats a slide set as plain text with YAML frontmatter.
// Each text is preceded by a bracketed number; the chorus is labelled.
func FormatSlideSet(set *wordslide.SlideSet) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(set.Name)
	b.WriteString("\nsource: ")
	b.WriteString(string(set.Source))
	if set.SourceURL != "" {
		b.WriteString("\nurl: ")
		b.WriteString(set.SourceURL)
	}
	if set.Chorus != nil {
		b.WriteString("\nchorus: ")
		b.WriteString(strconv.Itoa(*set.Chorus + 1))
	}
	b.WriteString("\n---\n")
	for i, text := range set.Texts {
		b.WriteString("\n[")
		b.WriteString(strconv.Itoa(i + 1))
		if set.Chorus != nil && *set.Chorus == i {
			b.WriteString(" chorus")
		}
		b.WriteString("]\n")
		b.WriteString(text.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// Ensure Writer implements wordslide.SlideSetWriter at compile time.
var _ wordslide.SlideSetWriter = (*Writer)(nil)

// Writer writes slide sets as text files.
type Writer struct {
	path string
}

// NewWriter creates a new Writer. If path is an existing directory, each
// set is written to a file named after its slug inside it; otherwise path
// is the output file.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteSlideSet writes the formatted set. The file is written to a
// temporary name and renamed into place so a failed write never leaves a
// truncated file behind.
func (w *Writer) WriteSlideSet(ctx context.Context, set *wordslide.SlideSet) error {
	if err := set.Validate(); err != nil {
		return err
	}
	return WriteAtomic(Target(w.path, set.Name, ".txt"), []byte(FormatSlideSet(set)))
}

// Target resolves the output file for a set: a slug-named file inside path
// when path is a directory, path itself otherwise.
func Target(path, name, ext string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, Slug(name)+ext)
	}
	return path
}

// WriteAtomic writes data to path through a temporary file in the same
// directory.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
