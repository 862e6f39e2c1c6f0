package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrOperation == "" || AttrOutcome == "" {
		t.Fatalf("expected metric label keys to be non-empty")
	}
}
