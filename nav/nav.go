// Package nav holds the documentation site's navigation tree: a static,
// ordered list of titled link groups consumed by the sidebar renderer.
//
// The tree is a compile-time asset (navigation.yaml, embedded). There is no
// dynamic loading and no versioning.
package nav

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate for malformed trees.
var ErrInvalid = errors.New("nav: invalid tree")

// Link is one sidebar entry.
type Link struct {
	Title string `yaml:"title"`
	Href  string `yaml:"href"`
}

// Group is a titled run of links.
type Group struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

// Tree is the ordered list of groups.
type Tree []Group

//go:embed navigation.yaml
var navigationYAML []byte

var defaultTree = sync.OnceValue(func() Tree {
	t, err := Parse(navigationYAML)
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the embedded navigation tree. Callers get their own copy.
func Default() Tree {
	return defaultTree().Clone()
}

// Parse decodes and validates a YAML navigation tree.
func Parse(data []byte) (Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("nav: decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that the tree has at least one group, every group has a
// title and at least one link, and every link has a title and a
// root-relative href.
func (t Tree) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no groups", ErrInvalid)
	}
	for i, g := range t {
		if strings.TrimSpace(g.Title) == "" {
			return fmt.Errorf("%w: group %d has no title", ErrInvalid, i)
		}
		if len(g.Links) == 0 {
			return fmt.Errorf("%w: group %q has no links", ErrInvalid, g.Title)
		}
		for j, l := range g.Links {
			if strings.TrimSpace(l.Title) == "" {
				return fmt.Errorf("%w: link %d of %q has no title", ErrInvalid, j, g.Title)
			}
			if !strings.HasPrefix(l.Href, "/") || strings.HasPrefix(l.Href, "//") {
				return fmt.Errorf("%w: link %q href %q is not root-relative", ErrInvalid, l.Title, l.Href)
			}
		}
	}
	return nil
}

// Walk calls fn for every link in order. It stops at the first error.
func (t Tree) Walk(fn func(g Group, l Link) error) error {
	for _, g := range t {
		for _, l := range g.Links {
			if err := fn(g, l); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	out := make(Tree, len(t))
	for i, g := range t {
		out[i] = Group{Title: g.Title, Links: append([]Link(nil), g.Links...)}
	}
	return out
}
