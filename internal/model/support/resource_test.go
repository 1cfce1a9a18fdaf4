package support

import "testing"

func TestFilterRegionIncludesGlobal(t *testing.T) {
	got := Filter(Seed(), "uk", "")
	if len(got) == 0 {
		t.Fatal("expected resources for uk")
	}
	for _, r := range got {
		if r.Region != "UK" && r.Region != "Global" {
			t.Fatalf("unexpected region %s", r.Region)
		}
	}
}

func TestFilterCategory(t *testing.T) {
	for _, r := range Filter(Seed(), "US", CategoryCrisis) {
		if r.Category != CategoryCrisis {
			t.Fatalf("unexpected category %s", r.Category)
		}
	}
	if n := len(Filter(Seed(), "", "")); n != len(Seed()) {
		t.Fatalf("empty filter should match everything, got %d", n)
	}
}
