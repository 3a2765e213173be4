// internal/common/camunda/worker.go
package camunda

import (
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"

	"document-workers/internal/common/logger"
)

// WorkerOptions configures one job worker subscription.
type WorkerOptions struct {
	TaskType       string
	MaxJobsActive  int
	Timeout        time.Duration
	FetchVariables []string
}

// Worker is an open job worker subscription for one task type.
type Worker struct {
	worker   worker.JobWorker
	logger   logger.Logger
	taskType string
}

// StartWorker opens a job worker that passes activated jobs to handler.
func StartWorker(client zbc.Client, opts WorkerOptions, handler worker.JobHandler, log logger.Logger) *Worker {
	builder := client.NewJobWorker().
		JobType(opts.TaskType).
		Handler(handler).
		MaxJobsActive(opts.MaxJobsActive).
		Timeout(opts.Timeout).
		Name(fmt.Sprintf("%s-worker", opts.TaskType))
	if len(opts.FetchVariables) > 0 {
		builder = builder.FetchVariables(opts.FetchVariables...)
	}
	jobWorker := builder.Open()

	w := &Worker{
		worker:   jobWorker,
		logger:   log,
		taskType: opts.TaskType,
	}

	log.Info("worker started", map[string]interface{}{
		"taskType":      opts.TaskType,
		"maxJobsActive": opts.MaxJobsActive,
		"timeout":       opts.Timeout.String(),
	})
	return w
}

// Stop closes the subscription and waits for in-flight jobs.
func (w *Worker) Stop() {
	w.logger.Info("stopping worker", map[string]interface{}{"taskType": w.taskType})
	w.worker.Close()
	w.worker.AwaitClose()
}
