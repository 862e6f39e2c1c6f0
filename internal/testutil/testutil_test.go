package testutil

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}

	clock := SteppingClock(now, time.Second)
	first, second := clock(), clock()
	if !first.Equal(now) || second.Sub(first) != time.Second {
		t.Fatalf("expected clock to step by 1s, got %v then %v", first, second)
	}
}

func TestStartServerAndDecode(t *testing.T) {
	srv := StartServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	resp, err := http.Post(srv.URL, "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]bool
	DecodeJSON(t, resp.Body, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "settings.yaml", "Fog: Foggy\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "Fog: Foggy\n" {
		t.Fatalf("unexpected contents %q", data)
	}
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "k", "v")
	if !strings.Contains(buf.String(), "k=v") {
		t.Fatalf("expected debug output by default, got %q", buf.String())
	}

	quiet, qbuf := NewBufferLogger(slog.LevelWarn)
	quiet.Info("hidden")
	if qbuf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn, got %q", qbuf.String())
	}
}
