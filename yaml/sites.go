// Package yaml loads delimiter-table overrides from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/fwojciec/wordslide"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a sites file. Each entry is keyed by source
// and lists only the fields that differ from the built-in table.
type File struct {
	Sites map[wordslide.Source]yaml.Node `yaml:"sites"`
}

// LoadSites reads overrides from path and merges them over the built-in
// tables. An empty path or a missing file yields the built-in tables.
func LoadSites(path string) (map[wordslide.Source]wordslide.Site, error) {
	if path == "" {
		return wordslide.DefaultSites(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return wordslide.DefaultSites(), nil
	} else if err != nil {
		return nil, err
	}
	return ParseSites(data, wordslide.DefaultSites())
}

// ParseSites decodes overrides from data on top of base. Fields absent from
// an entry keep their base value; entries for unknown sources start from an
// empty table. Every resulting table is validated.
func ParseSites(data []byte, base map[wordslide.Source]wordslide.Site) (map[wordslide.Source]wordslide.Site, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, wordslide.Errorf(wordslide.EINVALID, "parse sites: %v", err)
	}

	sites := make(map[wordslide.Source]wordslide.Site, len(base)+len(f.Sites))
	for source, site := range base {
		sites[source] = site
	}

	for source, node := range f.Sites {
		if source == wordslide.SourceLegacy {
			return nil, wordslide.Errorf(wordslide.EINVALID, "site %q: source is reserved for presentation files", source)
		}
		site := sites[source]
		if err := node.Decode(&site); err != nil {
			return nil, wordslide.Errorf(wordslide.EINVALID, "site %q: %v", source, err)
		}
		if site.Source == "" {
			site.Source = source
		}
		if site.Source != source {
			return nil, wordslide.Errorf(wordslide.EINVALID, "site %q: source %q does not match key", source, site.Source)
		}
		sites[source] = site
	}

	for _, source := range sortedSources(sites) {
		site := sites[source]
		if err := site.Validate(); err != nil {
			return nil, err
		}
	}
	return sites, nil
}

// MarshalSites encodes sites in the File layout, ordered by source.
func MarshalSites(sites map[wordslide.Source]wordslide.Site) ([]byte, error) {
	root := yaml.Node{Kind: yaml.MappingNode}
	for _, source := range sortedSources(sites) {
		var node yaml.Node
		if err := node.Encode(sites[source]); err != nil {
			return nil, err
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(source)},
			&node,
		)
	}

	doc := yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "sites"},
		&root,
	}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sortedSources(sites map[wordslide.Source]wordslide.Site) []wordslide.Source {
	sources := make([]wordslide.Source, 0, len(sites))
	for source := range sites {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources
}
