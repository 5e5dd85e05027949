package pipeline

import (
	"sync"

	"github.com/couchcryptid/route-grade-etl/internal/domain"
	"github.com/couchcryptid/route-grade-etl/internal/grade"
	"github.com/couchcryptid/route-grade-etl/internal/observability"
)

// CachedClassifier wraps a GradeClassifier with an in-memory LRU cache.
// Routebooks repeat the same handful of grades, so most lookups hit.
type CachedClassifier struct {
	inner   domain.GradeClassifier
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedClassifier creates a cache decorator around a classifier. metrics
// may be nil.
func NewCachedClassifier(inner domain.GradeClassifier, maxEntries int, metrics *observability.Metrics) *CachedClassifier {
	return &CachedClassifier{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

// Classify returns the cached result for token and discipline, classifying
// and storing it on a miss. Classification is deterministic, so every
// outcome is cached, including unclassified ones.
func (c *CachedClassifier) Classify(token string, discipline grade.Discipline) grade.Result {
	key := string(discipline) + "|" + token
	if result, ok := c.cache.get(key); ok {
		c.record("hit")
		return result
	}
	c.record("miss")
	result := c.inner.Classify(token, discipline)
	c.cache.put(key, result)
	return result
}

// Len returns the number of cached entries.
func (c *CachedClassifier) Len() int {
	return c.cache.len()
}

func (c *CachedClassifier) record(result string) {
	if c.metrics != nil {
		c.metrics.GradeCache.WithLabelValues(result).Inc()
	}
}

// lruCache is a simple thread-safe LRU cache for classification results.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value grade.Result
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (grade.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return grade.Result{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value grade.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.unlink(c.tail)
}
