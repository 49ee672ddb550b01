package helpers

import (
	"strings"
	"testing"
)

func TestOrderedSortsByPriority(t *testing.T) {
	r := NewRegistry()
	got := r.Ordered([]ID{Awaiter, Extends, Decorate})
	if len(got) != 3 {
		t.Fatalf("Ordered returned %d helpers, want 3", len(got))
	}
	want := []ID{Extends, Decorate, Awaiter}
	for i, h := range got {
		if h.ID != want[i] {
			t.Errorf("Ordered[%d] = %v, want %v", i, h.ID, want[i])
		}
	}
}

func TestMetadataRequiresDecorate(t *testing.T) {
	r := NewRegistry()

	// Alone: dropped.
	if got := r.Ordered([]ID{Metadata}); len(got) != 0 {
		t.Errorf("metadata emitted without decorate: %v", got)
	}

	// Alongside its primary: kept, after it.
	got := r.Ordered([]ID{Metadata, Decorate})
	if len(got) != 2 || got[0].ID != Decorate || got[1].ID != Metadata {
		t.Errorf("Ordered = %v, want [decorate metadata]", got)
	}
}

func TestOverrideReplacesBodyOnly(t *testing.T) {
	r := NewRegistry()
	r.Override(Extends, "/* custom extends */\n")

	h := r.Get(Extends)
	if h.Body != "/* custom extends */\n" {
		t.Errorf("Body = %q", h.Body)
	}
	if h.ID != Extends || h.Priority != 0 {
		t.Errorf("structure changed by Override: %+v", h)
	}
}

func TestBuiltinBodiesAreStatements(t *testing.T) {
	r := NewRegistry()
	for id := ID(0); id < idCount; id++ {
		h := r.Get(id)
		if h.Body == "" {
			t.Errorf("%v has no body", id)
			continue
		}
		if !strings.HasSuffix(h.Body, "\n") {
			t.Errorf("%v body does not end in a newline", id)
		}
	}
}
