package services

import "testing"

func TestNewContentID(t *testing.T) {
	orig := nowMillis
	defer func() { nowMillis = orig }()
	nowMillis = func() int64 { return 1712345678901 }

	if got := newContentID("poem"); got != "poem1712345678901" {
		t.Fatalf("unexpected id: %q", got)
	}
}
