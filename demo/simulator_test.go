package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"

	"github.com/microcollab/microcollab-api/schema"
)

func TestSeededWorld(t *testing.T) {
	s := NewSimulator(time.Minute, nil)

	sum := s.Summary()
	assert.True(t, sum.Requests >= 10 && sum.Requests <= 15, "got %d requests", sum.Requests)
	assert.True(t, sum.Offers <= sum.Requests*3)
}

func TestTicksNeverShrinkTheWorld(t *testing.T) {
	s := NewSimulator(time.Minute, nil)

	prev := s.Summary()
	for i := 0; i < 50; i++ {
		s.Tick()
		sum := s.Summary()
		assert.True(t, sum.Requests >= prev.Requests, "requests shrank on tick %d", i)
		assert.True(t, sum.Offers >= prev.Offers, "offers shrank on tick %d", i)
		prev = sum
	}

	assert.Len(t, s.Feed(), 50)
}

func TestListenersAreNotifiedSynchronously(t *testing.T) {
	s := NewSimulator(time.Minute, nil)

	got := []Event{}
	cancel := s.AddListener(func(e Event) { got = append(got, e) })

	s.Tick()
	s.Tick()
	assert.Len(t, got, 2)
	assert.NotEmpty(t, got[0].Message)

	cancel()
	s.Tick()
	assert.Len(t, got, 2)
}

func TestTickCountsByEventType(t *testing.T) {
	scope := tally.NewTestScope("demo", nil)
	s := NewSimulator(time.Minute, scope)

	for i := 0; i < 20; i++ {
		s.Tick()
	}

	total := int64(0)
	for _, counter := range scope.Snapshot().Counters() {
		total += counter.Value()
	}
	assert.Equal(t, int64(20), total)
}

func TestCompletedRequestsStayCompleted(t *testing.T) {
	s := NewSimulator(time.Minute, nil)

	for i := 0; i < 200; i++ {
		s.Tick()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		switch r.Status {
		case schema.RequestOpen, schema.RequestInProgress, schema.RequestCompleted:
		default:
			t.Fatalf("unexpected status %q", r.Status)
		}
	}
}

func TestStartStop(t *testing.T) {
	s := NewSimulator(10 * time.Millisecond, nil)

	s.Start()
	s.Start() // idempotent
	time.Sleep(50 * time.Millisecond)
	s.Stop()
	s.Stop() // idempotent

	n := len(s.Feed())
	assert.True(t, n > 0, "expected some ticks while running")

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, len(s.Feed()), "ticker kept running after Stop")
}
