package camunda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRetryConfig() *RetryConfig {
	return &RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		wantCalls int
		wantErr   error
	}{
		{"first attempt succeeds", []error{nil}, 1, nil},
		{"transient then success", []error{errors.New("connection refused"), nil}, 2, nil},
		{"timeouts exhaust retries", []error{
			errors.New("deadline exceeded"), errors.New("deadline exceeded"), errors.New("deadline exceeded"),
		}, 3, ErrBrokerTimeout},
		{"permanent error not retried", []error{errors.New("job not found")}, 1, ErrBrokerRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), testRetryConfig(), "complete-job", func(ctx context.Context) error {
				e := tt.errs[calls]
				calls++
				return e
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "complete-job")
			}
		})
	}
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := &RetryConfig{MaxRetries: 5, BaseDelay: time.Hour, MaxDelay: time.Hour}

	calls := 0
	err := WithRetry(ctx, cfg, "complete-job", func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("unavailable")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryableZeebeError(t *testing.T) {
	assert.True(t, isRetryableZeebeError(errors.New("rpc error: code = Unavailable")))
	assert.True(t, isRetryableZeebeError(errors.New("broken pipe")))
	assert.False(t, isRetryableZeebeError(errors.New("NOT_FOUND: job 1")))
}
