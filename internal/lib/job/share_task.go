package job

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/todos/internal/lib/email"
	"github.com/hibiken/asynq"
)

const (
	// TaskShareTodoList emails a snapshot of a todo list.
	TaskShareTodoList = "todolist:share"
)

// ShareTodoListPayload is stored in Redis with the task. The list is a
// snapshot: session-backed lists are not reachable from the worker.
type ShareTodoListPayload struct {
	To   string             `json:"to"`
	List email.TodoListData `json:"list"`
}

// NewShareTodoListTask builds the task with up to 3 retries on the default
// queue and a 30 second timeout.
func NewShareTodoListTask(to string, list email.TodoListData) (*asynq.Task, error) {
	payload, err := json.Marshal(ShareTodoListPayload{
		To:   to,
		List: list,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskShareTodoList,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
