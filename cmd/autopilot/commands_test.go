package main

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWrappedSkipsOverlappingRuns(t *testing.T) {
	var started int32
	release := make(chan struct{})
	job := func() {
		atomic.AddInt32(&started, 1)
		<-release
	}

	c, id, err := newScheduler("30 19 * * *", job)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		runWrapped(c, id)
		close(done)
	}()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&started) == 1 }, time.Second, 5*time.Millisecond)

	// a second run while the first is still going is dropped
	runWrapped(c, id)
	assert.Equal(t, int32(1), atomic.LoadInt32(&started))

	close(release)
	<-done

	// once the first run finished the job can run again
	go runWrapped(c, id)
	require.Eventually(t, func() bool { return atomic.LoadInt32(&started) == 2 }, time.Second, 5*time.Millisecond)
}

func TestNewSchedulerRejectsBadSpec(t *testing.T) {
	_, _, err := newScheduler("every day", func() {})
	assert.Error(t, err)
}
