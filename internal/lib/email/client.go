// Package email sends transactional email through Resend. Bodies are
// rendered from HTML templates embedded in the binary.
package email

import (
	"context"
	"fmt"

	"github.com/deppfellow/todos/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Client wraps the Resend client.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		from:   cfg.Integration.EmailFrom,
		logger: logger,
	}
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(ctx context.Context, to, subject string, templateName Template, data any) error {
	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().Str("email_id", sent.Id).Str("template", string(templateName)).Msg("email accepted by provider")
	return nil
}

// TodoItem is one line of a shared list.
type TodoItem struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// TodoListData is the snapshot of a list that gets emailed.
type TodoListData struct {
	Title      string     `json:"title"`
	Todos      []TodoItem `json:"todos"`
	TodosDone  int        `json:"todos_done"`
	TodosTotal int        `json:"todos_total"`
}

// SendTodoListEmail emails a snapshot of a todo list.
func (c *Client) SendTodoListEmail(ctx context.Context, to string, list TodoListData) error {
	return c.SendEmail(ctx, to, fmt.Sprintf("Todo list: %s", list.Title), TemplateTodoList, list)
}
