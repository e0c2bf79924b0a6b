package output

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Tests run without a TTY, so the action executes inline.
func TestRunWithSpinner_ReturnsActionError(t *testing.T) {
	want := errors.New("download failed")
	err := RunWithSpinner(context.Background(), func(context.Context) error {
		return want
	}, WithTitle("Downloading"))
	assert.ErrorIs(t, err, want)
}

func TestRunWithSpinner_Success(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_TimeoutPropagatesToAction(t *testing.T) {
	err := RunWithSpinner(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, WithTimeout(10*time.Millisecond))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
