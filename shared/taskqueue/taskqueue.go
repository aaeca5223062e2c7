// Package taskqueue runs a fixed list of tasks one at a time, in order, and stops at the
// first failure. Work already done is reported and never undone.
package taskqueue

import (
	"context"
	"fmt"
)

type Result[T any] struct {
	Key   string
	Value T
	Err   error
}

type Report[T any] struct {
	Completed []Result[T]
	Failed    *Result[T]
	Skipped   []string
}

func (r Report[T]) OK() bool {
	return r.Failed == nil
}

// Values returns the values of the completed tasks in run order.
func (r Report[T]) Values() []T {
	values := make([]T, len(r.Completed))
	for i, result := range r.Completed {
		values[i] = result.Value
	}

	return values
}

type task[T any] struct {
	key string
	run func(ctx context.Context) (T, error)
}

type Queue[T any] struct {
	tasks       []task[T]
	onCompleted func(ctx context.Context, result Result[T])
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends a task. key identifies the task in the report, e.g. a seat number.
func (q *Queue[T]) Push(key string, run func(ctx context.Context) (T, error)) *Queue[T] {
	q.tasks = append(q.tasks, task[T]{key: key, run: run})

	return q
}

// OnCompleted registers a hook called right after each successful task, before the next starts.
func (q *Queue[T]) OnCompleted(fn func(ctx context.Context, result Result[T])) *Queue[T] {
	q.onCompleted = fn

	return q
}

func (q *Queue[T]) Len() int {
	return len(q.tasks)
}

func (q *Queue[T]) Run(ctx context.Context) Report[T] {
	var report Report[T]

	for i, t := range q.tasks {
		result := Result[T]{Key: t.key}

		if err := ctx.Err(); err != nil {
			result.Err = fmt.Errorf("task %s not started: %w", t.key, err)
		} else {
			result.Value, result.Err = t.run(ctx)
		}

		if result.Err != nil {
			report.Failed = &result

			for _, rest := range q.tasks[i+1:] {
				report.Skipped = append(report.Skipped, rest.key)
			}

			return report
		}

		report.Completed = append(report.Completed, result)

		if q.onCompleted != nil {
			q.onCompleted(ctx, result)
		}
	}

	return report
}
