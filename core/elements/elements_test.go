package elements

import "testing"

func TestSymbol(t *testing.T) {
	tests := []struct {
		z    int
		want string
	}{
		{0, "n"},
		{1, "H"},
		{2, "He"},
		{26, "Fe"},
		{92, "U"},
		{118, "Og"},
	}
	for _, tt := range tests {
		got, ok := Symbol(tt.z)
		if !ok {
			t.Errorf("Symbol(%d): not found", tt.z)
			continue
		}
		if got != tt.want {
			t.Errorf("Symbol(%d) = %q, want %q", tt.z, got, tt.want)
		}
	}
}

func TestSymbolOutOfRange(t *testing.T) {
	if _, ok := Symbol(-1); ok {
		t.Error("Symbol(-1) should not resolve")
	}
	if _, ok := Symbol(MaxZ + 1); ok {
		t.Errorf("Symbol(%d) should not resolve", MaxZ+1)
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != MaxZ+1 {
		t.Fatalf("len(All()) = %d, want %d", len(all), MaxZ+1)
	}
	if all[0] != "n" || all[MaxZ] != "Og" {
		t.Errorf("table endpoints = %q, %q", all[0], all[MaxZ])
	}
}
