package shutdown

import (
	"testing"
	"time"

	"rgb-slicer/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsInReverseOrder(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var order []string
	m.Register(Func(func() { order = append(order, "first") }))
	m.Register(Func(func() { order = append(order, "second") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimesOutSlowComponent(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.timeout = 10 * time.Millisecond

	release := make(chan struct{})
	defer close(release)
	m.Register(Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()
	assert.Less(t, time.Since(start), time.Second)
}
