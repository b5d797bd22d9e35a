package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
)

// Template names an HTML file under templates/.
type Template string

const (
	// TemplateTodoList corresponds to templates/todo_list.html
	TemplateTodoList Template = "todo_list"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render executes the named template with data.
func Render(name Template, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, fmt.Sprintf("%s.html", name), data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

// PreviewData holds sample data per template for local previews.
var PreviewData = map[Template]any{
	TemplateTodoList: TodoListData{
		Title: "Work Todos",
		Todos: []TodoItem{
			{Title: "Duck out of meeting"},
			{Title: "Chat with co-workers", Done: true},
			{Title: "Get coffee", Done: true},
		},
		TodosDone:  2,
		TodosTotal: 3,
	},
}

// Preview renders name with its PreviewData.
func Preview(name Template) (string, error) {
	data, ok := PreviewData[name]
	if !ok {
		return "", fmt.Errorf("no preview data for template %q", name)
	}
	return Render(name, data)
}
