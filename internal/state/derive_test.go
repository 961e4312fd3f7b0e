package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	store := New([]string{"a", "bb"})
	lengths := Map[[]string, int](store, func(v []string) int { return len(v) })

	assert.Equal(t, 2, lengths.Get())

	var seen []int
	unsub := lengths.Subscribe(func(n int) { seen = append(seen, n) })
	store.Set([]string{"a", "b", "c"})
	unsub()
	store.Set(nil)

	assert.Equal(t, []int{3}, seen)
	assert.Equal(t, 0, lengths.Get())
}

func TestCombine_RecomputesOnEitherSource(t *testing.T) {
	items := New([]string{"Algebra", "Geometria", "Algoritmos"})
	query := New("")

	filtered := Combine[[]string, string, []string](items, query, func(all []string, q string) []string {
		out := make([]string, 0, len(all))
		for _, item := range all {
			if strings.HasPrefix(strings.ToLower(item), strings.ToLower(q)) {
				out = append(out, item)
			}
		}
		return out
	})

	var seen [][]string
	unsub := filtered.Subscribe(func(v []string) { seen = append(seen, v) })

	query.Set("alg")
	items.Set([]string{"Algebra", "Historia"})
	unsub()
	unsub()
	query.Set("his")

	assert.Equal(t, [][]string{
		{"Algebra", "Algoritmos"},
		{"Algebra"},
	}, seen)
	assert.Equal(t, []string{"Historia"}, filtered.Get())
	assert.Equal(t, 0, items.SubscriberCount())
	assert.Equal(t, 0, query.SubscriberCount())
}
