// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Shutdown were called.
type mockWorker struct {
	runCount      int
	shutdownCount int
	shutdownErr   error
}

func (m *mockWorker) Run() {
	m.runCount++
}

func (m *mockWorker) Shutdown(context.Context) error {
	m.shutdownCount++
	return m.shutdownErr
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
	assert.NoError(t, ws.Shutdown(context.Background()))
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestWorkers_Shutdown_JoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	w1 := &mockWorker{shutdownErr: errA}
	w2 := &mockWorker{}
	w3 := &mockWorker{shutdownErr: errB}

	err := NewWorkers(w1, w2, w3).Shutdown(context.Background())

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	for _, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.shutdownCount)
	}
}
