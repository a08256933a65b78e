package autosave_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marsnote/pkg/autosave"
)

// recorder counts saves and fails the test if two ever overlap.
type recorder struct {
	t      *testing.T
	active atomic.Int32
	count  atomic.Int32
	delay  time.Duration
}

func (r *recorder) Save(ctx context.Context) error {
	if r.active.Add(1) > 1 {
		r.t.Error("overlapping saves")
	}
	defer r.active.Add(-1)
	time.Sleep(r.delay)
	r.count.Add(1)
	return nil
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, autosave.Clamp(-5))
	assert.Equal(t, 60, autosave.Clamp(120))
	assert.Equal(t, 7, autosave.Clamp(7))
}

func TestSaveNow_BeforeStart(t *testing.T) {
	rec := &recorder{t: t}
	s := autosave.New(rec)
	require.NoError(t, s.SaveNow(context.Background()))
	assert.EqualValues(t, 1, rec.count.Load())
}

func TestTimerSaves(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{t: t}
	s := autosave.New(rec, autosave.WithUnit(10*time.Millisecond))
	require.NoError(t, s.Start(ctx, 1))

	assert.Eventually(t, func() bool { return rec.count.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	state := s.State().(autosave.SchedulerState)
	assert.True(t, state.Running)
	assert.GreaterOrEqual(t, state.Ticks, 3)
}

func TestDisabledTimer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{t: t}
	s := autosave.New(rec, autosave.WithUnit(time.Millisecond))
	require.NoError(t, s.Start(ctx, 0))

	time.Sleep(30 * time.Millisecond)
	assert.EqualValues(t, 0, rec.count.Load())

	s.SetInterval(120)
	assert.Equal(t, 60, s.Interval())
	s.SetInterval(0)
	assert.Equal(t, 0, s.Interval())
}

func TestSetInterval_StopsOldTicker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{t: t}
	s := autosave.New(rec, autosave.WithUnit(5*time.Millisecond))
	require.NoError(t, s.Start(ctx, 1))
	assert.Eventually(t, func() bool { return rec.count.Load() >= 1 }, time.Second, time.Millisecond)

	s.SetInterval(0)
	// A save request is handled after the interval change, so the ticker is gone.
	require.NoError(t, s.SaveNow(ctx))
	settled := rec.count.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, settled, rec.count.Load())
}

func TestConcurrentRequestsAreSerialized(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{t: t, delay: time.Millisecond}
	s := autosave.New(rec, autosave.WithUnit(time.Millisecond))
	require.NoError(t, s.Start(ctx, 1))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.SaveNow(ctx))
		}()
	}
	wg.Wait()
	assert.GreaterOrEqual(t, rec.count.Load(), int32(20))
}

func TestStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	failing := autosave.SaverFunc(func(context.Context) error { return errors.New("disk full") })
	s := autosave.New(failing)
	require.NoError(t, s.Start(ctx, 0))
	assert.Error(t, s.Start(ctx, 0))

	assert.EqualError(t, s.SaveNow(ctx), "disk full")
	assert.Equal(t, 1, s.State().(autosave.SchedulerState).Failures)

	cancel()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.ErrorIs(t, s.SaveNow(context.Background()), autosave.ErrStopped)
	assert.False(t, s.State().(autosave.SchedulerState).Running)
}
