package resolver

// MemoryCache is an in-process ports.PredicateCache. It covers a single
// resolve-and-execute flow; the fs tag store replaces it when results
// must survive across processes spawned by recipes.
type MemoryCache struct {
	results map[string]bool
}

// NewMemoryCache returns an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{results: make(map[string]bool)}
}

// Get returns the recorded result for name.
func (c *MemoryCache) Get(name string) (bool, bool, error) {
	updated, ok := c.results[name]
	return updated, ok, nil
}

// Put records the result of evaluating name.
func (c *MemoryCache) Put(name string, updated bool) error {
	c.results[name] = updated
	return nil
}
