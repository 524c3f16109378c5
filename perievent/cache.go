package perievent

import "sync"

// Key identifies one analysis: the recording segment, the event
// timestamp, and the extraction window.
type Key struct {
	Rec       int
	EventTime float64
	Window    Window
}

// Cache memoizes completed analyses per session. Entries are inserted
// only after an extraction fully succeeds, so a failed call never leaves
// a partial result behind. Analyze always recomputes and re-inserts; the
// cache exists for later retrieval, not for short-circuiting calls.
// It is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*Result
}

// NewCache creates an empty analysis cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*Result)}
}

// Put stores a completed result under its own key.
func (c *Cache) Put(res *Result) {
	key := Key{Rec: res.Rec, EventTime: res.EventTime, Window: res.Window}

	c.mu.Lock()
	c.entries[key] = res
	c.mu.Unlock()
}

// Lookup returns the cached result for the key, if any.
func (c *Cache) Lookup(rec int, eventTime float64, w Window) (*Result, bool) {
	c.mu.Lock()
	res, ok := c.entries[Key{Rec: rec, EventTime: eventTime, Window: w}]
	c.mu.Unlock()

	return res, ok
}

// Len returns the number of cached analyses.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
