package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/todos/internal/errs"
	"github.com/labstack/echo/v4"
)

type renameRequest struct {
	ListID int64  `param:"listId" json:"-"`
	Title  string `json:"title" validate:"required,max=10"`
}

func (r *renameRequest) Validate() error {
	return Struct(r, Messages{"Title.required": "The list title is required."})
}

func newContext(method, body string, params ...string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	if len(params) > 0 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	return c
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T %v", err, err)
	}
	return httpErr
}

func TestBindAndValidateBindsParamsAndBody(t *testing.T) {
	var req renameRequest
	c := newContext(http.MethodPatch, `{"title":"Home"}`, "listId", "42")
	if err := BindAndValidate(c, &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ListID != 42 || req.Title != "Home" {
		t.Fatalf("bound %+v", req)
	}
}

func TestBindAndValidateCustomMessage(t *testing.T) {
	var req renameRequest
	err := BindAndValidate(newContext(http.MethodPatch, `{"title":""}`, "listId", "1"), &req)

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest || httpErr.Message != "The list title is required." {
		t.Fatalf("got %d %q", httpErr.Status, httpErr.Message)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "title" {
		t.Fatalf("field errors = %+v", httpErr.Errors)
	}
}

func TestBindAndValidateFallsBackToTagMessages(t *testing.T) {
	var req renameRequest
	err := BindAndValidate(newContext(http.MethodPatch, `{"title":"much too long title"}`, "listId", "1"), &req)

	httpErr := asHTTPError(t, err)
	if httpErr.Message != "Validation failed" {
		t.Fatalf("message = %q", httpErr.Message)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Error != "must not exceed 10 characters" {
		t.Fatalf("field errors = %+v", httpErr.Errors)
	}
}

func TestBindAndValidateBadInput(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		params []string
	}{
		{"malformed json", `{"title":`, []string{"listId", "1"}},
		{"wrong type", `{"title":5}`, []string{"listId", "1"}},
		{"non numeric id", `{"title":"ok"}`, []string{"listId", "abc"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req renameRequest
			err := BindAndValidate(newContext(http.MethodPatch, tc.body, tc.params...), &req)
			httpErr := asHTTPError(t, err)
			if httpErr.Status != http.StatusBadRequest || httpErr.Message == "" {
				t.Fatalf("got %d %q", httpErr.Status, httpErr.Message)
			}
		})
	}
}
