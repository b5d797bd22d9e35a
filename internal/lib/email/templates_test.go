package email

import (
	"strings"
	"testing"
)

func TestRenderTodoList(t *testing.T) {
	html, err := Render(TemplateTodoList, TodoListData{
		Title:      "Groceries <weekly>",
		Todos:      []TodoItem{{Title: "Milk"}, {Title: "Eggs", Done: true}},
		TodosDone:  1,
		TodosTotal: 2,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Groceries &lt;weekly&gt;",
		"1 of 2 done",
		"&#9744; Milk",
		"<s>Eggs</s>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered body missing %q", want)
		}
	}
}

func TestRenderEmptyList(t *testing.T) {
	html, err := Render(TemplateTodoList, TodoListData{Title: "Additional Todos"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "There are no todos on this list.") {
		t.Fatal("empty list message missing")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := Render("nope", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestPreview(t *testing.T) {
	html, err := Preview(TemplateTodoList)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(html, "Work Todos") {
		t.Fatal("preview did not use sample data")
	}
	if _, err := Preview("missing"); err == nil {
		t.Fatal("expected error for template without preview data")
	}
}
