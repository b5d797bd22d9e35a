// Package job runs background work on asynq, a Redis-backed queue.
// Handlers enqueue through JobService.Client, the worker server consumes.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/todos/internal/config"
	"github.com/deppfellow/todos/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer is what the job handlers need from the email client.
type Mailer interface {
	SendTodoListEmail(ctx context.Context, to string, list email.TodoListData) error
}

// JobService holds the asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	mailer Mailer
	logger *zerolog.Logger
}

// NewJobService connects both sides of the queue to cfg.Redis.Address.
// Workers are split over the critical, default and low queues 6:3:1.
func NewJobService(logger *zerolog.Logger, cfg *config.Config, mailer Mailer) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mailer: mailer,
		logger: logger,
	}
}

// mux routes task types to their handlers.
func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskShareTodoList, j.handleShareTodoListTask)
	return mux
}

// Start runs the worker server in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.mux())
}

// EnqueueShareTodoList queues an email with a snapshot of list.
func (j *JobService) EnqueueShareTodoList(ctx context.Context, to string, list email.TodoListData) error {
	task, err := NewShareTodoListTask(to, list)
	if err != nil {
		return fmt.Errorf("build share task: %w", err)
	}
	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue share task: %w", err)
	}
	j.logger.Info().Str("task_id", info.ID).Str("queue", info.Queue).Msg("enqueued share todo list task")
	return nil
}

// Stop shuts the workers down and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
