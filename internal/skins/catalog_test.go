package skins

import "testing"

func TestCatalogShape(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("Catalog must not be empty")
	}
	if all[0].ID != DefaultID {
		t.Errorf("First entry should be the default skin, got %q", all[0].ID)
	}
	if all[0].Price != 0 {
		t.Errorf("Default skin must be free, price = %d", all[0].Price)
	}

	seen := make(map[string]bool)
	for _, s := range all {
		if seen[s.ID] {
			t.Errorf("Duplicate skin ID %q", s.ID)
		}
		seen[s.ID] = true
		if s.Name == "" || s.Color == "" {
			t.Errorf("Skin %q missing display fields", s.ID)
		}
		if s.Price < 0 {
			t.Errorf("Skin %q has negative price %d", s.ID, s.Price)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Error("All() must not expose the backing catalog")
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("red"); got.ID != "red" {
		t.Errorf("Resolve(red) = %q", got.ID)
	}
	if got := Resolve("no-such-skin"); got.ID != DefaultID {
		t.Errorf("Unknown ID should fall back to default, got %q", got.ID)
	}
	if got := Resolve(""); got.ID != DefaultID {
		t.Errorf("Empty ID should fall back to default, got %q", got.ID)
	}
}

func TestExists(t *testing.T) {
	if !Exists(DefaultID) {
		t.Error("Default skin should exist")
	}
	if Exists("no-such-skin") {
		t.Error("Unknown skin should not exist")
	}
}
