package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	if got := MakeUpperCaseWithUnderscores("Service Unavailable"); got != "SERVICE_UNAVAILABLE" {
		t.Fatalf("got %q", got)
	}
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load list: %w", TodoListNotFound())

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("errors.As should find the HTTPError")
	}
	if httpErr.Status != http.StatusNotFound || httpErr.Code != CodeTodoListNotFound {
		t.Fatalf("unexpected error %+v", httpErr)
	}
	if !errors.Is(wrapped, &HTTPError{}) {
		t.Fatal("errors.Is should match any *HTTPError")
	}
}

func TestTodoListTitleTakenCarriesFieldError(t *testing.T) {
	err := TodoListTitleTaken()
	if err.Status != http.StatusBadRequest || !err.Override {
		t.Fatalf("unexpected error %+v", err)
	}
	if len(err.Errors) != 1 || err.Errors[0].Field != "title" {
		t.Fatalf("expected a title field error, got %+v", err.Errors)
	}
}

func TestWithMessageCopies(t *testing.T) {
	base := NewForbiddenError("nope", false)
	changed := base.WithMessage("still nope")
	if base.Message != "nope" || changed.Message != "still nope" || changed.Status != http.StatusForbidden {
		t.Fatalf("WithMessage mutated or lost fields: base=%+v changed=%+v", base, changed)
	}
}
