package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/todos/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type fakeMailer struct {
	to   string
	list email.TodoListData
	err  error
}

func (f *fakeMailer) SendTodoListEmail(_ context.Context, to string, list email.TodoListData) error {
	f.to = to
	f.list = list
	return f.err
}

func newTestJobService(mailer Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: mailer, logger: &logger}
}

func TestNewShareTodoListTask(t *testing.T) {
	list := email.TodoListData{Title: "Home", Todos: []email.TodoItem{{Title: "Dishes"}}, TodosTotal: 1}
	task, err := NewShareTodoListTask("a@example.com", list)
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if task.Type() != TaskShareTodoList {
		t.Fatalf("type = %q", task.Type())
	}

	var p ShareTodoListPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.To != "a@example.com" || p.List.Title != "Home" || len(p.List.Todos) != 1 {
		t.Fatalf("payload = %+v", p)
	}
}

func TestHandleShareTodoListTask(t *testing.T) {
	mailer := &fakeMailer{}
	j := newTestJobService(mailer)

	task, _ := NewShareTodoListTask("b@example.com", email.TodoListData{Title: "Work"})
	if err := j.mux().ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("process: %v", err)
	}
	if mailer.to != "b@example.com" || mailer.list.Title != "Work" {
		t.Fatalf("mailer got %q %+v", mailer.to, mailer.list)
	}
}

func TestHandleShareTodoListTaskErrors(t *testing.T) {
	sendErr := errors.New("provider down")
	j := newTestJobService(&fakeMailer{err: sendErr})

	task, _ := NewShareTodoListTask("c@example.com", email.TodoListData{Title: "Work"})
	if err := j.handleShareTodoListTask(context.Background(), task); !errors.Is(err, sendErr) {
		t.Fatalf("err = %v, want %v", err, sendErr)
	}

	bad := asynq.NewTask(TaskShareTodoList, []byte("{"))
	if err := j.handleShareTodoListTask(context.Background(), bad); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
