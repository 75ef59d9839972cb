package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wordslide"
	"github.com/fwojciec/wordslide/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSites(t *testing.T) {
	t.Parallel()

	t.Run("overrides only listed fields", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
sites:
  site-a:
    indexURL: http://mirror.example.org/hymnbook/hymns.html
    baseURL: http://mirror.example.org/hymnbook/
`)

		sites, err := yaml.ParseSites(data, wordslide.DefaultSites())

		require.NoError(t, err)
		a := sites[wordslide.SourceSiteA]
		assert.Equal(t, "http://mirror.example.org/hymnbook/hymns.html", a.IndexURL)
		assert.Equal(t, "http://mirror.example.org/hymnbook/", a.BaseURL)
		assert.Equal(t, wordslide.SiteA().VerseStart, a.VerseStart)
		assert.Equal(t, wordslide.SiteA().Replacements, a.Replacements)
		assert.Equal(t, wordslide.SiteB(), sites[wordslide.SourceSiteB])
	})

	t.Run("replaces replacement lists", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
sites:
  site-b:
    replacements:
      - old: "&#8217;"
        new: "'"
`)

		sites, err := yaml.ParseSites(data, wordslide.DefaultSites())

		require.NoError(t, err)
		assert.Equal(t, []wordslide.Replacement{{Old: "&#8217;", New: "'"}}, sites[wordslide.SourceSiteB].Replacements)
	})

	t.Run("does not modify base", func(t *testing.T) {
		t.Parallel()

		base := wordslide.DefaultSites()
		data := []byte("sites:\n  site-a:\n    verseEnd: \"</div>\"\n")

		_, err := yaml.ParseSites(data, base)

		require.NoError(t, err)
		assert.Equal(t, "</p>", base[wordslide.SourceSiteA].VerseEnd)
	})

	t.Run("adds new site", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
sites:
  hymnary:
    name: Hymnary
    indexURL: http://hymnary.example.org/index.html
    directMarker: .html
    anchorPrefix: '<a href="'
    titleStart: <h1>
    titleEnd: </h1>
    containerEnd: <footer>
    verseStart: <p>
    verseEnd: </p>
    countRule: trailing
`)

		sites, err := yaml.ParseSites(data, wordslide.DefaultSites())

		require.NoError(t, err)
		require.Len(t, sites, 3)
		assert.Equal(t, wordslide.Source("hymnary"), sites["hymnary"].Source)
		assert.Equal(t, wordslide.CountTrailing, sites["hymnary"].CountRule)
	})

	t.Run("rejects incomplete table", func(t *testing.T) {
		t.Parallel()

		data := []byte("sites:\n  site-a:\n    verseStart: \"\"\n")

		_, err := yaml.ParseSites(data, wordslide.DefaultSites())

		assert.Equal(t, wordslide.EINVALID, wordslide.ErrorCode(err))
	})

	t.Run("rejects mismatched source", func(t *testing.T) {
		t.Parallel()

		data := []byte("sites:\n  site-a:\n    source: site-b\n")

		_, err := yaml.ParseSites(data, wordslide.DefaultSites())

		assert.Equal(t, wordslide.EINVALID, wordslide.ErrorCode(err))
	})

	t.Run("rejects reserved legacy source", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
sites:
  legacy:
    name: Legacy
    indexURL: http://legacy.example.org/index.html
    directMarker: .html
    anchorPrefix: '<a href="'
    titleStart: <h1>
    titleEnd: </h1>
    containerEnd: <footer>
    verseStart: <p>
    verseEnd: </p>
    countRule: trailing
`)

		_, err := yaml.ParseSites(data, wordslide.DefaultSites())

		assert.Equal(t, wordslide.EINVALID, wordslide.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseSites([]byte("sites: ["), wordslide.DefaultSites())

		assert.Equal(t, wordslide.EINVALID, wordslide.ErrorCode(err))
	})
}

func TestLoadSites(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		sites, err := yaml.LoadSites("")

		require.NoError(t, err)
		assert.Equal(t, wordslide.DefaultSites(), sites)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Parallel()

		sites, err := yaml.LoadSites(filepath.Join(t.TempDir(), "sites.yaml"))

		require.NoError(t, err)
		assert.Equal(t, wordslide.DefaultSites(), sites)
	})

	t.Run("reads overrides from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sites:\n  site-b:\n    baseURL: http://hymntime.example.com\n"), 0644))

		sites, err := yaml.LoadSites(path)

		require.NoError(t, err)
		assert.Equal(t, "http://hymntime.example.com", sites[wordslide.SourceSiteB].BaseURL)
	})
}

func TestMarshalSites(t *testing.T) {
	t.Parallel()

	data, err := yaml.MarshalSites(wordslide.DefaultSites())
	require.NoError(t, err)

	sites, err := yaml.ParseSites(data, nil)

	require.NoError(t, err)
	assert.Equal(t, wordslide.DefaultSites(), sites)
}
