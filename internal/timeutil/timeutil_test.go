package timeutil

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 8, 28, 19, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2025-08-28" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestFromEpochMillis(t *testing.T) {
	want := time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC)
	if got := FromEpochMillis(want.UnixMilli()); !got.Equal(want) {
		t.Fatalf("FromEpochMillis = %v, want %v", got, want)
	}
}
