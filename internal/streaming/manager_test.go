package streaming

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	m := NewManager(8)
	ch := m.Subscribe("run-1", 4)
	defer m.Unsubscribe("run-1", ch)

	m.Publish("run-1", Event{RunID: "run-1", Type: TypeRunStarted})
	m.Publish("run-2", Event{RunID: "run-2", Type: TypeRunStarted})

	evt := <-ch
	assert.Equal(t, TypeRunStarted, evt.Type)
	assert.Equal(t, "run-1", evt.RunID)
	assert.Len(t, ch, 0, "events from other runs must not be delivered")
}

func TestSequenceAssignment(t *testing.T) {
	m := NewManager(8)
	for i := 0; i < 3; i++ {
		m.Publish("run-1", Event{RunID: "run-1", Type: TypeWorkerCompleted})
	}
	evs := m.ReplaySince("run-1", 0)
	require.Len(t, evs, 3, "sequences start at 1 so a zero cursor replays everything")
	assert.Equal(t, uint64(1), evs[0].Seq)
	assert.Equal(t, uint64(3), evs[2].Seq)
	assert.Len(t, m.ReplaySince("run-1", 2), 1)
}

func TestRingOverwritesOldest(t *testing.T) {
	m := NewManager(3)
	for i := 0; i < 5; i++ {
		m.Publish("run-1", Event{RunID: "run-1"})
	}
	// Ring holds seq 3,4,5; replay everything still retained.
	evs := m.ReplaySince("run-1", 0)
	require.Len(t, evs, 3)
	assert.Equal(t, uint64(3), evs[0].Seq)
	assert.Equal(t, uint64(5), evs[2].Seq)
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	m := NewManager(8)
	ch := m.Subscribe("run-1", 1)
	defer m.Unsubscribe("run-1", ch)

	// Second publish must not block even though the buffer is full.
	m.Publish("run-1", Event{RunID: "run-1"})
	m.Publish("run-1", Event{RunID: "run-1"})

	assert.Len(t, ch, 1)
	// The dropped event is still replayable from the ring.
	assert.Len(t, m.ReplaySince("run-1", 0), 2)
}

// Replay must be safe while a run is still publishing; this is exactly what
// happens when an SSE observer attaches mid-run. Run with -race.
func TestReplayDuringActivePublish(t *testing.T) {
	m := NewManager(16)
	const n = 200

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			m.Publish("run-1", Event{RunID: "run-1", Type: TypeWorkerCompleted})
		}
	}()

	for i := 0; i < n; i++ {
		evs := m.ReplaySince("run-1", 0)
		// Replayed events are always oldest-first with ascending sequences.
		var prev uint64
		for _, ev := range evs {
			require.Greater(t, ev.Seq, prev)
			prev = ev.Seq
		}
	}
	wg.Wait()

	evs := m.ReplaySince("run-1", 0)
	require.NotEmpty(t, evs)
	assert.Equal(t, uint64(n), evs[len(evs)-1].Seq)
}

func TestForget(t *testing.T) {
	m := NewManager(8)
	m.Publish("run-1", Event{RunID: "run-1"})
	m.Forget("run-1")
	assert.Nil(t, m.ReplaySince("run-1", 0))
}
