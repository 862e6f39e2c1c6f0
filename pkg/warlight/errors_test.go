package warlight

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAPIErrorString(t *testing.T) {
	err := &APIError{Op: OpCreateGame, Message: "bad template"}
	if got := err.Error(); got != "warlight: create_game: bad template" {
		t.Fatalf("unexpected error string %q", got)
	}
	if got := (&APIError{}).Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
	if errors.Is(err, ErrGameNotFound) {
		t.Fatalf("plain api errors are not not-found")
	}
}

func TestAPIErrorNotFoundUnwraps(t *testing.T) {
	err := fmt.Errorf("outer: %w", &APIError{Op: OpQueryGame, Message: "ServerGameKeyNotFound", notFound: true})
	if !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound through wrapping")
	}
	apiErr, ok := AsAPIError(err)
	if !ok || !apiErr.NotFound() {
		t.Fatalf("expected to unwrap api error")
	}
}

func TestArgumentError(t *testing.T) {
	err := argError(OpGameIDs, "source", "need both source type and id")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument")
	}
	if !strings.Contains(err.Error(), "invalid source") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if got := (&ArgumentError{Op: "x", Reason: "y"}).Error(); got != "warlight: x: y" {
		t.Fatalf("unexpected message %q", got)
	}
	if _, ok := AsArgumentError(fmt.Errorf("wrap: %w", err)); !ok {
		t.Fatalf("expected to unwrap argument error")
	}
	if _, ok := AsArgumentError(errors.New("other")); ok {
		t.Fatalf("did not expect argument error")
	}
}

func TestStatusErrorString(t *testing.T) {
	if got := (&StatusError{Op: "x", StatusCode: 502}).Error(); got != "warlight: x: unexpected status 502" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (&StatusError{Op: "x", StatusCode: 502, Body: "boom"}).Error(); !strings.HasSuffix(got, ": boom") {
		t.Fatalf("unexpected message %q", got)
	}
}
