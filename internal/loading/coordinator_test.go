package loading

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatorStartsIdle(t *testing.T) {
	c := New()
	assert.False(t, c.Busy())
	assert.Equal(t, 0, c.Count())
}

func TestCoordinatorReferenceCounting(t *testing.T) {
	tests := []struct {
		name  string
		enter int
		exit  int
		want  bool
	}{
		{name: "one enter", enter: 1, exit: 0, want: true},
		{name: "three enters", enter: 3, exit: 0, want: true},
		{name: "three enters two exits", enter: 3, exit: 2, want: true},
		{name: "balanced", enter: 3, exit: 3, want: false},
		{name: "extra exits", enter: 2, exit: 5, want: false},
		{name: "exits only", enter: 0, exit: 2, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for range tt.enter {
				c.Enter()
			}
			for range tt.exit {
				c.Exit()
			}
			assert.Equal(t, tt.want, c.Busy())
			assert.GreaterOrEqual(t, c.Count(), 0)
			assert.Equal(t, max(tt.enter-tt.exit, 0), c.Count())
		})
	}
}

func TestCoordinatorEnterEnterExitExitExit(t *testing.T) {
	c := New()
	var observed []bool

	steps := []func(){c.Enter, c.Enter, c.Exit, c.Exit, c.Exit}
	for _, step := range steps {
		step()
		observed = append(observed, c.Busy())
	}

	assert.Equal(t, []bool{true, true, true, false, false}, observed)
	assert.Equal(t, 0, c.Count())
}

func TestCoordinatorExtraExitDoesNotGoNegative(t *testing.T) {
	c := New()
	c.Exit()
	c.Exit()
	assert.False(t, c.Busy())

	c.Enter()
	assert.True(t, c.Busy())
	c.Exit()
	assert.False(t, c.Busy())
}

func TestCoordinatorForceIdle(t *testing.T) {
	t.Run("mid sequence", func(t *testing.T) {
		c := New()
		c.Enter()
		c.Enter()
		c.Enter()

		c.ForceIdle()
		assert.False(t, c.Busy())
		assert.Equal(t, 0, c.Count())

		c.Enter()
		c.Exit()
		assert.False(t, c.Busy(), "count restarts from zero after ForceIdle")
	})

	t.Run("without prior enter", func(t *testing.T) {
		c := New()
		c.ForceIdle()
		assert.False(t, c.Busy())
		assert.Equal(t, 0, c.Count())
	})
}

func TestCoordinatorBusySignalTransitions(t *testing.T) {
	c := New()
	var transitions []bool
	c.BusySignal().Subscribe(func(b bool) { transitions = append(transitions, b) })

	c.Enter()
	c.Enter()
	c.Exit()
	c.Exit()
	c.Exit()
	c.Enter()
	c.ForceIdle()

	assert.Equal(t, []bool{true, false, true, false}, transitions,
		"observers see only actual busy/idle changes")
}

func TestCoordinatorConcurrentPairs(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Enter()
			c.Exit()
		}()
	}
	wg.Wait()

	assert.False(t, c.Busy())
	assert.Equal(t, 0, c.Count())
}
