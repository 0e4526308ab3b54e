package utils

import "testing"

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if len(a) != 16 {
		t.Errorf("ID length = %d, want 16", len(a))
	}
	if a == b {
		t.Error("Two generated IDs collided")
	}
}

func TestStringToSeedStable(t *testing.T) {
	if StringToSeed("demo_arena") != StringToSeed("demo_arena") {
		t.Error("Same string must always produce the same seed")
	}
	if StringToSeed("demo_arena") == StringToSeed("other_arena") {
		t.Error("Different strings produced the same seed")
	}
}
