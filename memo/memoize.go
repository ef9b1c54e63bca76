/*package memo caches interpolation results keyed by the full parameter
tuple, so repeated requests for the same view skip the grid evaluation. The
engine itself never retains results; this cache is the caller-side
memoization layer.
*/
package memo

import (
	"sync"

	"github.com/alanhuang116/geofield/grid"
	"github.com/alanhuang116/geofield/interp"
	"github.com/alanhuang116/geofield/sample"
)

// Key identifies one interpolation request: the method, the grid shape, and
// a content signature of the Sample Set.
type Key struct {
	Method     string
	Resolution int
	HasBounds  bool
	Bounds     grid.Bounds
	Signature  uint64
}

// Cache is a concurrency-safe result cache. Results are stored as returned
// by the engine; callers must not modify them.
type Cache struct {
	mu      sync.RWMutex
	results map[Key]*grid.Result
}

func NewCache() *Cache {
	return &Cache{results: map[Key]*grid.Result{}}
}

func (c *Cache) Get(k Key) (*grid.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.results[k]
	return r, ok
}

func (c *Cache) Put(k Key, r *grid.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[k] = r
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

// Interpolate runs the engine through the cache. Errors are returned
// directly and never cached.
func (c *Cache) Interpolate(
	e *interp.Engine, s *sample.Set,
	method string, resolution int, bounds *grid.Bounds,
) (*grid.Result, error) {
	k := Key{
		Method:     method,
		Resolution: resolution,
		Signature:  s.Signature(),
	}
	if bounds != nil {
		k.HasBounds = true
		k.Bounds = *bounds
	}

	if r, ok := c.Get(k); ok {
		return r, nil
	}
	r, err := e.Interpolate(s, method, resolution, bounds)
	if err != nil {
		return nil, err
	}
	c.Put(k, r)
	return r, nil
}
