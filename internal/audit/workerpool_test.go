package audit

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolRunsTasks(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var ran atomic.Int64
	done := make(chan struct{}, 5)

	for i := 0; i < 5; i++ {
		err := pool.AddTask(context.Background(), func() error {
			ran.Add(1)
			done <- struct{}{}
			return nil
		})
		assert.NoError(t, err)
	}

	for i := 0; i < 5; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for tasks")
		}
	}
	assert.Equal(t, int64(5), ran.Load())
}

func TestWorkerPoolTaskErrorDoesNotStopWorkers(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	done := make(chan struct{}, 2)

	err := pool.AddTask(context.Background(), func() error {
		done <- struct{}{}
		return errors.New("task error")
	})
	assert.NoError(t, err)

	err = pool.AddTask(context.Background(), func() error {
		done <- struct{}{}
		return nil
	})
	assert.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for tasks")
		}
	}
}

func TestWorkerPoolAddTaskHonorsContext(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	block := make(chan struct{})
	// Occupy the single worker and fill the buffer so the next add blocks.
	_ = pool.AddTask(context.Background(), func() error {
		<-block
		return nil
	})
	_ = pool.AddTask(context.Background(), func() error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pool.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	close(block)
}

func TestWorkerPoolCloseIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Close()
	pool.Close()
}
