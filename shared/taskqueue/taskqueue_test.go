package taskqueue_test

import (
	"context"
	"errors"
	"testing"

	"busbooking/shared/taskqueue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_RunsInOrder(t *testing.T) {
	var order, hooked []string

	q := taskqueue.New[int]()
	for i, key := range []string{"R01", "R02", "R03"} {
		q.Push(key, func(context.Context) (int, error) {
			order = append(order, key)

			return i + 40, nil
		})
	}

	q.OnCompleted(func(_ context.Context, result taskqueue.Result[int]) {
		hooked = append(hooked, result.Key)
	})

	report := q.Run(context.Background())

	require.True(t, report.OK())
	assert.Equal(t, []string{"R01", "R02", "R03"}, order)
	assert.Equal(t, order, hooked)
	assert.Equal(t, []int{40, 41, 42}, report.Values())
	assert.Empty(t, report.Skipped)
}

func TestQueue_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("seat already booked")
	calls := 0

	report := taskqueue.New[string]().
		Push("R01", func(context.Context) (string, error) { calls++; return "booking-1", nil }).
		Push("R02", func(context.Context) (string, error) { calls++; return "", boom }).
		Push("R03", func(context.Context) (string, error) { calls++; return "booking-3", nil }).
		Run(context.Background())

	assert.False(t, report.OK())
	assert.Equal(t, 2, calls)
	require.NotNil(t, report.Failed)
	assert.Equal(t, "R02", report.Failed.Key)
	assert.ErrorIs(t, report.Failed.Err, boom)
	assert.Equal(t, []string{"booking-1"}, report.Values())
	assert.Equal(t, []string{"R03"}, report.Skipped)
}

func TestQueue_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	report := taskqueue.New[int]().
		Push("R01", func(context.Context) (int, error) { cancel(); return 1, nil }).
		Push("R02", func(context.Context) (int, error) { return 2, nil }).
		Run(ctx)

	require.NotNil(t, report.Failed)
	assert.Equal(t, "R02", report.Failed.Key)
	assert.ErrorIs(t, report.Failed.Err, context.Canceled)
	assert.Len(t, report.Completed, 1)
}

func TestQueue_Empty(t *testing.T) {
	q := taskqueue.New[int]()

	assert.Zero(t, q.Len())
	assert.True(t, q.Run(context.Background()).OK())
}
