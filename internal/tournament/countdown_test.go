package tournament

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdown_TicksThenExpires(t *testing.T) {
	ticks := make(chan int, 10)
	expired := make(chan struct{})

	cd := NewCountdown(3, 5*time.Millisecond)
	cd.Start(func(r int) { ticks <- r }, func() { close(expired) })

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("countdown did not expire")
	}

	close(ticks)
	var got []int
	for r := range ticks {
		got = append(got, r)
	}
	assert.Equal(t, []int{2, 1}, got)
}

func TestCountdown_CancelPreventsExpire(t *testing.T) {
	var fired atomic.Bool

	cd := NewCountdown(2, 20*time.Millisecond)
	cd.Start(func(int) {}, func() { fired.Store(true) })
	cd.Cancel()
	cd.Cancel()

	time.Sleep(80 * time.Millisecond)
	assert.False(t, fired.Load())
	assert.True(t, cd.Stopped())
}
