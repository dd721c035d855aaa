package dijkstra

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/sprout/core"
)

// DefaultCacheSize is the number of shortest-path trees a Finder keeps.
const DefaultCacheSize = 256

// Finder answers repeated shortest-path queries over one sealed graph,
// caching the tree of each recently used source in an LRU.
//
// Finder is safe for concurrent use. Two goroutines missing on the same
// source may both compute its tree; the results are identical.
type Finder struct {
	g     *core.Graph
	opts  []Option
	trees *lru.Cache[int, *Tree]
}

// FinderOption configures a Finder.
type FinderOption func(*finderConfig)

type finderConfig struct {
	cacheSize int
	search    []Option
}

// WithCacheSize sets how many trees the Finder retains. Panics if n < 1.
func WithCacheSize(n int) FinderOption {
	if n < 1 {
		panic(ErrBadCacheSize.Error())
	}
	return func(c *finderConfig) { c.cacheSize = n }
}

// WithSearchOptions forwards Dijkstra options to every search.
func WithSearchOptions(opts ...Option) FinderOption {
	return func(c *finderConfig) { c.search = append(c.search, opts...) }
}

// NewFinder returns a Finder over g.
func NewFinder(g *core.Graph, opts ...FinderOption) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := finderConfig{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	trees, err := lru.New[int, *Tree](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("NewFinder: %w", err)
	}

	return &Finder{g: g, opts: cfg.search, trees: trees}, nil
}

// Find returns the shortest path from s to t. The boolean is false when t
// is unreachable from s or either index is out of range.
func (f *Finder) Find(s, t int) (Path, bool) {
	tree, err := f.Tree(s)
	if err != nil {
		return Path{}, false
	}

	return tree.PathTo(t)
}

// Tree returns the cached shortest-path tree of s, computing it on a miss.
func (f *Finder) Tree(s int) (*Tree, error) {
	if tree, ok := f.trees.Get(s); ok {
		return tree, nil
	}
	tree, err := Dijkstra(f.g, s, f.opts...)
	if err != nil {
		return nil, err
	}
	f.trees.Add(s, tree)

	return tree, nil
}

// Cached returns the number of trees currently held.
func (f *Finder) Cached() int { return f.trees.Len() }
