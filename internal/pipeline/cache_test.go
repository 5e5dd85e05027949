package pipeline

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/route-grade-etl/internal/grade"
	"github.com/couchcryptid/route-grade-etl/internal/observability"
)

type countingClassifier struct {
	mu    sync.Mutex
	calls int
	inner *grade.Engine
}

func (c *countingClassifier) Classify(token string, d grade.Discipline) grade.Result {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.inner.Classify(token, d)
}

func TestCachedClassifier_HitsAndMisses(t *testing.T) {
	inner := &countingClassifier{inner: grade.NewEngine(nil)}
	metrics := observability.NewMetricsForTesting()
	c := NewCachedClassifier(inner, 10, metrics)

	first := c.Classify("7a", grade.DisciplineSport)
	second := c.Classify("7a", grade.DisciplineSport)

	assert.Equal(t, first, second)
	assert.Equal(t, 24.0, second.Ordinal)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.GradeCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.GradeCache.WithLabelValues("miss")))
}

func TestCachedClassifier_DisciplineIsPartOfKey(t *testing.T) {
	inner := &countingClassifier{inner: grade.NewEngine(nil)}
	c := NewCachedClassifier(inner, 10, nil)

	sport := c.Classify("6a", grade.DisciplineSport)
	boulder := c.Classify("6a", grade.DisciplineBoulder)

	assert.Equal(t, grade.OutcomeClassified, sport.Outcome)
	assert.Equal(t, grade.OutcomeBoulderGuard, boulder.Outcome)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedClassifier_CachesUnclassified(t *testing.T) {
	inner := &countingClassifier{inner: grade.NewEngine(nil)}
	c := NewCachedClassifier(inner, 10, nil)

	c.Classify("??", grade.DisciplineSport)
	res := c.Classify("??", grade.DisciplineSport)

	assert.Equal(t, grade.OutcomeUndetermined, res.Outcome)
	assert.Equal(t, 1, inner.calls)
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := newLRUCache(2)

	cache.put("a", grade.Result{Token: "a"})
	cache.put("b", grade.Result{Token: "b"})
	cache.get("a") // a is now most recent
	cache.put("c", grade.Result{Token: "c"})

	_, ok := cache.get("b")
	assert.False(t, ok, "least recently used entry is evicted")
	_, ok = cache.get("a")
	assert.True(t, ok)
	_, ok = cache.get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.len())
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	cache := newLRUCache(2)
	cache.put("a", grade.Result{Ordinal: 1})
	cache.put("a", grade.Result{Ordinal: 2})

	v, ok := cache.get("a")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v.Ordinal)
	assert.Equal(t, 1, cache.len())
}

func TestCachedClassifier_Concurrent(t *testing.T) {
	c := NewCachedClassifier(grade.NewEngine(nil), 4, nil)
	tokens := []string{"7a", "8-", "5.10a", "V5", "7A+", "Xa"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tok := range tokens {
				c.Classify(tok, grade.DisciplineUnknown)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 4)
}
