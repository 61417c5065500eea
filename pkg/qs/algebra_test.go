package qs

import "testing"

// TestAddAccumulation tests that non-default fields grow into multi-values
// across repeated calls - the mechanism behind multi-select filters.
func TestAddAccumulation(t *testing.T) {
	cfg := mustConfig(t, "o")

	p := Params{"status": String("a")}
	p = Add(cfg, p, Params{"status": String("b")})
	items := p["status"].Items()
	if len(items) != 2 || items[0].Str() != "a" || items[1].Str() != "b" {
		t.Fatalf("after first Add: got %v, want [a b]", p["status"])
	}

	p = Add(cfg, p, Params{"status": String("c")})
	items = p["status"].Items()
	if len(items) != 3 || items[2].Str() != "c" {
		t.Fatalf("after second Add: got %v, want [a b c]", p["status"])
	}
}

// TestAddDefaultOverwrite tests that default fields replace rather than
// accumulate.
func TestAddDefaultOverwrite(t *testing.T) {
	cfg := mustConfig(t, "o")

	p := Params{"page": Int(1), "page_size": Int(5)}
	p = Add(cfg, p, Params{"page": Int(3)})
	if !p["page"].Equal(Int(3)) {
		t.Errorf("page: got %v, want outright overwrite to 3", p["page"])
	}
	if !p["page_size"].Equal(Int(5)) {
		t.Errorf("page_size: got %v, want untouched 5", p["page_size"])
	}
}

// TestAddPassThroughAndNewKeys tests untouched and brand-new fields.
func TestAddPassThroughAndNewKeys(t *testing.T) {
	cfg := mustConfig(t, "o")

	p := Params{"status": Multi(String("a"), String("b"))}
	p = Add(cfg, p, Params{"name": String("foo")})
	if p["status"].Len() != 2 {
		t.Errorf("status: got %v, want pass-through unchanged", p["status"])
	}
	if !p["name"].Equal(String("foo")) {
		t.Errorf("name: got %v, want verbatim from the add set", p["name"])
	}
}

// TestAddDoesNotMutateArguments tests the no-mutation contract.
func TestAddDoesNotMutateArguments(t *testing.T) {
	cfg := mustConfig(t, "o")

	old := Params{"status": String("a")}
	add := Params{"status": String("b")}
	_ = Add(cfg, old, add)

	if !old["status"].Equal(String("a")) {
		t.Error("Add mutated its old argument")
	}
	if !add["status"].Equal(String("b")) {
		t.Error("Add mutated its add argument")
	}
}

// TestRemoveElement tests dropping one element of a multi-value field.
func TestRemoveElement(t *testing.T) {
	cfg := mustConfig(t, "o")

	p := Params{"status": Multi(String("a"), String("b"), String("c"))}
	p = Remove(cfg, p, Params{"status": String("b")})
	items := p["status"].Items()
	if len(items) != 2 || items[0].Str() != "a" || items[1].Str() != "c" {
		t.Fatalf("got %v, want [a c] with order preserved", p["status"])
	}

	// A single survivor collapses back to a scalar.
	p = Remove(cfg, p, Params{"status": String("c")})
	if p["status"].Kind() != KindString || p["status"].Str() != "a" {
		t.Errorf("got %v, want scalar \"a\"", p["status"])
	}
}

// TestRemoveLastElement tests key deletion and default reversion.
func TestRemoveLastElement(t *testing.T) {
	cfg := mustConfig(t, "o")

	t.Run("NonDefaultKeyDeleted", func(t *testing.T) {
		p := Params{"status": String("a")}
		p = Remove(cfg, p, Params{"status": String("a")})
		if _, ok := p["status"]; ok {
			t.Errorf("status survived: %v", p["status"])
		}
	})

	t.Run("DefaultKeyReverts", func(t *testing.T) {
		p := Params{"page": Int(7)}
		p = Remove(cfg, p, Params{"page": Int(7)})
		if !p["page"].Equal(Int(1)) {
			t.Errorf("page: got %v, want reversion to default 1", p["page"])
		}
	})
}

// TestRemoveExactMatch tests that only exact (key, value) pairs drop.
func TestRemoveExactMatch(t *testing.T) {
	cfg := mustConfig(t, "o")

	t.Run("ValueMismatchSurvives", func(t *testing.T) {
		p := Params{"status": String("a")}
		p = Remove(cfg, p, Params{"status": String("z")})
		if !p["status"].Equal(String("a")) {
			t.Errorf("got %v, want the unmatched value kept", p["status"])
		}
	})

	t.Run("TypeMismatchSurvives", func(t *testing.T) {
		p := Params{"rank": Int(1)}
		p = Remove(cfg, p, Params{"rank": String("1")})
		if !p["rank"].Equal(Int(1)) {
			t.Errorf("got %v, want Int(1) kept against String(\"1\")", p["rank"])
		}
	})

	t.Run("MultiRemovalValueMatchesNothing", func(t *testing.T) {
		// Removal entries are not exploded, so a sequence value never
		// matches the flattened scalar entries.
		p := Params{"status": Multi(String("a"), String("b"))}
		p = Remove(cfg, p, Params{"status": Multi(String("a"), String("b"))})
		if p["status"].Len() != 2 {
			t.Errorf("got %v, want the field untouched", p["status"])
		}
	})
}

// TestRemoveDoesNotMutateArguments tests the no-mutation contract.
func TestRemoveDoesNotMutateArguments(t *testing.T) {
	cfg := mustConfig(t, "o")

	old := Params{"status": Multi(String("a"), String("b"))}
	_ = Remove(cfg, old, Params{"status": String("a")})
	if old["status"].Len() != 2 {
		t.Error("Remove mutated its old argument")
	}
}

// TestDefaultPinning tests that no Add/Remove sequence can erase a default
// field from the result.
func TestDefaultPinning(t *testing.T) {
	cfg := mustConfig(t, "o")

	p, err := Parse(cfg, "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	p = Add(cfg, p, Params{"page": Int(4)})
	p = Remove(cfg, p, Params{"page": Int(4)})
	p = Add(cfg, p, Params{"order_by": String("created")})
	p = Remove(cfg, p, Params{"order_by": String("created")})
	p = Remove(cfg, p, Params{"page_size": Int(5)})

	for k, want := range map[string]Value{
		"page":      Int(1),
		"page_size": Int(5),
		"order_by":  String("name"),
	} {
		got, ok := p[k]
		if !ok {
			t.Fatalf("default field %q disappeared", k)
		}
		if !got.Equal(want) {
			t.Errorf("%s: got %v, want the configured default %v", k, got, want)
		}
	}
}
