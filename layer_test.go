package contour

import "testing"

func TestLayerIndex(t *testing.T) {
	if l := LayerIndex(3) + LayerIndex(4); l != 7 {
		t.Errorf("got %v, want 7", l)
	}
	// Raft layers are negative.
	if s := LayerIndex(-2).String(); s != "-2" {
		t.Errorf("got %q, want %q", s, "-2")
	}
}
