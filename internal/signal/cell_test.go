package signal

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellNotifiesOnlyOnChange(t *testing.T) {
	c := Comparable(false)

	var seen []bool
	c.Subscribe(func(v bool) { seen = append(seen, v) })

	assert.False(t, c.Set(false), "same value is not a change")
	assert.True(t, c.Set(true))
	assert.False(t, c.Set(true))
	assert.True(t, c.Set(false))

	assert.Equal(t, []bool{true, false}, seen)
	assert.False(t, c.Get())
}

func TestCellCustomEquality(t *testing.T) {
	c := New([]int{1, 2}, slices.Equal[[]int])

	calls := 0
	c.Subscribe(func([]int) { calls++ })

	c.Set([]int{1, 2})
	assert.Equal(t, 0, calls, "equal slices must not notify")

	c.Set([]int{1, 2, 3})
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{1, 2, 3}, c.Get())
}

func TestCellNilEqualityAlwaysNotifies(t *testing.T) {
	c := New(1, nil)
	calls := 0
	c.Subscribe(func(int) { calls++ })

	c.Set(1)
	c.Set(1)
	assert.Equal(t, 2, calls)
}

func TestCellUnsubscribe(t *testing.T) {
	c := Comparable(0)

	var a, b []int
	unsubA := c.Subscribe(func(v int) { a = append(a, v) })
	c.Subscribe(func(v int) { b = append(b, v) })

	c.Set(1)
	unsubA()
	unsubA()
	c.Set(2)

	assert.Equal(t, []int{1}, a)
	assert.Equal(t, []int{1, 2}, b)
}

func TestCellSubscriberOrder(t *testing.T) {
	c := Comparable("")

	var order []string
	c.Subscribe(func(string) { order = append(order, "first") })
	c.Subscribe(func(string) { order = append(order, "second") })

	c.Set("x")
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestCellSubscriberMayReadCell(t *testing.T) {
	c := Comparable(0)
	var read int
	c.Subscribe(func(int) { read = c.Get() })

	c.Set(7)
	assert.Equal(t, 7, read)
}

func TestCellConcurrentSet(t *testing.T) {
	c := Comparable(0)
	var mu sync.Mutex
	notified := 0
	c.Subscribe(func(int) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			c.Set(v)
		}(i)
	}
	wg.Wait()

	require.NotZero(t, c.Get())
	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, notified, 1)
	assert.LessOrEqual(t, notified, 50)
}
