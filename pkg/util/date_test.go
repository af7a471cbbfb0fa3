package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseTimeProviderLayout(t *testing.T) {
	got, ok := ParseTime("2024-10-10 10:10:10")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Hour() != 10 || got.Year() != 2024 {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeInvalid(t *testing.T) {
	if _, ok := ParseTime("not-a-time"); ok {
		t.Fatalf("expected not ok")
	}
	if _, ok := ParseTime(""); ok {
		t.Fatalf("expected not ok")
	}
}

func TestISO8601(t *testing.T) {
	ts := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	if got := ISO8601(ts); got != "2023-11-14T22:13:20Z" {
		t.Fatalf("unexpected iso string %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10, "..."); got != "hello" {
		t.Fatalf("short string must pass through, got %q", got)
	}
	if got := Truncate("hello", 5, "..."); got != "hello" {
		t.Fatalf("exact length must pass through, got %q", got)
	}
	if got := Truncate("hello world", 5, "..."); got != "hello..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := Truncate("ééééé", 5, "..."); got != "ééééé" {
		t.Fatalf("multibyte string within limit must pass through, got %q", got)
	}
	if got := Truncate("éééééé", 5, "..."); got != "ééééé..." {
		t.Fatalf("unexpected multibyte truncation %q", got)
	}
}
