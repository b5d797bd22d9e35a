package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleShareTodoListTask sends the list snapshot carried by the task.
// Returning an error makes asynq retry it.
func (j *JobService) handleShareTodoListTask(ctx context.Context, t *asynq.Task) error {
	var p ShareTodoListPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal share todo list payload: %w", err)
	}

	j.logger.Info().
		Str("type", TaskShareTodoList).
		Str("to", p.To).
		Str("list", p.List.Title).
		Msg("Processing share todo list task")

	if err := j.mailer.SendTodoListEmail(ctx, p.To, p.List); err != nil {
		j.logger.Error().
			Str("type", TaskShareTodoList).
			Str("to", p.To).
			Err(err).
			Msg("Failed to send todo list email")
		return err
	}

	j.logger.Info().
		Str("type", TaskShareTodoList).
		Str("to", p.To).
		Msg("Successfully sent todo list email")

	return nil
}
