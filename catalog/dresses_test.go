package catalog

import "testing"

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a := Builtin()
	if len(a) != 6 {
		t.Fatalf("len(Builtin) = %d, want 6", len(a))
	}
	a[0].Name = "changed"
	if b := Builtin(); b[0].Name == "changed" {
		t.Error("mutating Builtin() result leaked into the catalog")
	}
}

func TestByID(t *testing.T) {
	d, ok := ByID("DR-004")
	if !ok || d.Name != "Champagne Satin Gown" {
		t.Errorf("ByID(DR-004) = %+v, %v", d, ok)
	}
	if _, ok := ByID("DR-999"); ok {
		t.Error("ByID(DR-999) found a dress")
	}
}
