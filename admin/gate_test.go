package admin

import "testing"

func TestGate_Check(t *testing.T) {
	g := NewGate("admin123")
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"admin123", true},
		{"admin1234", false},
		{"Admin123", false},
		{" admin123", false},
		{"", false},
	} {
		if got := g.Check(tc.in); got != tc.want {
			t.Errorf("Check(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGate_EmptySecretNeverOpens(t *testing.T) {
	if NewGate("").Check("") {
		t.Error("empty secret accepted empty input")
	}
}
