package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		code LocationCode
	}{
		{name: "Boston", code: 94},
		{name: "Chicago", code: 100},
		{name: "Toronto", code: 145},
		{name: "New Haven", code: 122},
		{name: "New York", code: 123},
	}

	locations := Default()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, found := locations.Lookup(test.name)
			if !found {
				t.Fatalf("Lookup(%q): not found", test.name)
			}
			if code != test.code {
				t.Errorf("Lookup(%q): got %d, want %d", test.name, code, test.code)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()
	if _, found := Default().Lookup("Atlantis"); found {
		t.Error("Lookup(Atlantis): found, want not found")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()
	base := Registry{"Boston": 94, "Chicago": 100}
	merged := base.Merge(Registry{"Chicago": 999, "Albany": 89})

	if got := merged["Chicago"]; got != 999 {
		t.Errorf("merged Chicago: got %d, want 999", got)
	}
	if got := merged["Albany"]; got != 89 {
		t.Errorf("merged Albany: got %d, want 89", got)
	}
	if got := merged["Boston"]; got != 94 {
		t.Errorf("merged Boston: got %d, want 94", got)
	}
	if got := base["Chicago"]; got != 100 {
		t.Errorf("base Chicago mutated by Merge: got %d, want 100", got)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "locations.yaml")
	contents := "Albany: 89\nBuffalo: 95\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	locations, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if got := locations["Albany"]; got != 89 {
		t.Errorf("Albany: got %d, want 89", got)
	}
	if got := locations["Buffalo"]; got != 95 {
		t.Errorf("Buffalo: got %d, want 95", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile on missing file: got nil error")
	}
}
