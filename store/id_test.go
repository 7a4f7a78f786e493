package store

import (
	"regexp"
	"testing"
	"time"
)

func TestNewID_Format(t *testing.T) {
	prefixed := regexp.MustCompile(`^buy-\d+-[0-9a-z]{9}$`)
	if id := NewID("buy"); !prefixed.MatchString(id) {
		t.Errorf("NewID(buy) = %q", id)
	}
	bare := regexp.MustCompile(`^\d+-[0-9a-z]{9}$`)
	if id := NewID(""); !bare.MatchString(id) {
		t.Errorf("NewID(\"\") = %q", id)
	}
}

func TestNewDressID_Format(t *testing.T) {
	re := regexp.MustCompile(`^DR-\d{3,4}$`)
	for i := 0; i < 50; i++ {
		if id := NewDressID(); !re.MatchString(id) {
			t.Fatalf("NewDressID = %q", id)
		}
	}
}

func TestTimestamp_ISO8601(t *testing.T) {
	orig := Now
	t.Cleanup(func() { Now = orig })
	Now = func() time.Time { return time.Date(2024, 5, 10, 8, 30, 0, 123e6, time.FixedZone("EET", 2*3600)) }

	if got, want := Timestamp(), "2024-05-10T06:30:00.123Z"; got != want {
		t.Errorf("Timestamp = %q, want %q", got, want)
	}
}
