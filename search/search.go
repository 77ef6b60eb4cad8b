// Package search filters a static dataset by substring and memoizes result
// sets per normalized term in an LRU cache.
package search

import (
	"slices"
	"strings"

	"github.com/phuslu/log"
)

// Cache memoizes result sets by normalized term. Get promotes the entry it
// returns, so implementations mutate state on every successful lookup.
// Both *lru.Cache[string, []Result] and *lru.SyncCache[string, []Result]
// satisfy it.
type Cache interface {
	Get(key string) ([]Result, bool)
	Set(key string, results []Result)
}

// Result is an item together with its highlighted name.
type Result struct {
	Item     Item
	Segments []Segment
}

// Render joins the segments, wrapping matched text in before and after.
func (r Result) Render(before, after string) string {
	var b strings.Builder
	for _, seg := range r.Segments {
		if seg.Match {
			b.WriteString(before)
			b.WriteString(seg.Text)
			b.WriteString(after)
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger used for cache hit and store messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Searcher) {
		s.logger = l
	}
}

// Searcher runs substring searches over a fixed item set. It owns its cache
// and never revalidates cached results: the item set must not change for the
// lifetime of the Searcher.
type Searcher struct {
	items  []Item
	cache  Cache
	logger *log.Logger
}

// New returns a Searcher over items that memoizes results in cache.
func New(items []Item, cache Cache, opts ...Option) *Searcher {
	s := &Searcher{
		items: items,
		cache: cache,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the items whose name contains term, ignoring case. A blank
// term returns nothing and does not touch the cache. The returned slice is a
// deep copy; callers may modify it freely.
func (s *Searcher) Search(term string) []Result {
	if strings.TrimSpace(term) == "" {
		return nil
	}

	key := Normalize(term)
	if cached, ok := s.cache.Get(key); ok {
		if s.logger != nil {
			s.logger.Debug().Str("term", term).Int("results", len(cached)).Msg("using cached results")
		}
		return cloneResults(cached)
	}

	results := s.filter(term)
	s.cache.Set(key, results)
	if s.logger != nil {
		s.logger.Debug().Str("term", term).Int("results", len(results)).Msg("cached new results")
	}
	return cloneResults(results)
}

func (s *Searcher) filter(term string) []Result {
	results := make([]Result, 0)
	for _, item := range s.items {
		if !Matches(item.Name, term) {
			continue
		}
		results = append(results, Result{
			Item:     item,
			Segments: Highlight(item.Name, term),
		})
	}
	return results
}

// cloneResults copies results and their segments so callers never share
// memory with the cached entry.
func cloneResults(results []Result) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = Result{Item: r.Item, Segments: slices.Clone(r.Segments)}
	}
	return out
}
