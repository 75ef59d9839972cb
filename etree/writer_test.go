package etree_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/wordslide"
	wsetree "github.com/fwojciec/wordslide/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet(t *testing.T) *wordslide.SlideSet {
	t.Helper()
	set := &wordslide.SlideSet{
		Name:      "Abide with Me",
		Source:    wordslide.SourceSiteB,
		SourceURL: "http://www.cyberhymnal.org/htm/a/b/abidewme.htm",
	}
	require.NoError(t, set.Reserve(2, 0))
	require.NoError(t, set.SetText(0, "Abide with me;\nfast falls the eventide;", 0))
	require.NoError(t, set.SetText(1, "I need Thy presence & grace", 0))
	require.NoError(t, set.SetChorus(1))
	return set
}

func TestDocument(t *testing.T) {
	t.Parallel()

	doc := wsetree.Document(testSet(t))

	root := doc.SelectElement("slideset")
	require.NotNil(t, root)
	assert.Equal(t, "Abide with Me", root.SelectAttrValue("name", ""))
	assert.Equal(t, "site-b", root.SelectAttrValue("source", ""))
	assert.Equal(t, "http://www.cyberhymnal.org/htm/a/b/abidewme.htm", root.SelectAttrValue("url", ""))
	assert.Nil(t, root.SelectAttr("hash"))

	slides := root.SelectElements("slide")
	require.Len(t, slides, 2)
	assert.Equal(t, "1", slides[0].SelectAttrValue("number", ""))
	assert.Equal(t, "Abide with me;\nfast falls the eventide;", slides[0].Text())
	assert.Nil(t, slides[0].SelectAttr("chorus"))
	assert.Equal(t, "true", slides[1].SelectAttrValue("chorus", ""))
}

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ wordslide.SlideSetWriter = wsetree.NewWriter("")
}

func TestWriter_WriteSlideSet(t *testing.T) {
	t.Parallel()

	t.Run("writes a readable document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "abide.xml")

		err := wsetree.NewWriter(path, wsetree.WithIndent(4)).WriteSlideSet(context.Background(), testSet(t))
		require.NoError(t, err)

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromFile(path))
		slides := doc.FindElements("/slideset/slide")
		require.Len(t, slides, 2)
		assert.Equal(t, "I need Thy presence & grace", slides[1].Text())
	})

	t.Run("names the file after the set inside a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		require.NoError(t, wsetree.NewWriter(dir).WriteSlideSet(context.Background(), testSet(t)))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromFile(filepath.Join(dir, "abide-with-me.xml")))
	})

	t.Run("rejects invalid set", func(t *testing.T) {
		t.Parallel()

		set := &wordslide.SlideSet{Name: "Abide with Me"}
		require.NoError(t, set.Reserve(1, 0))

		err := wsetree.NewWriter(t.TempDir()).WriteSlideSet(context.Background(), set)

		assert.Equal(t, wordslide.EINVALID, wordslide.ErrorCode(err))
	})
}
