package vecstore

import (
	"context"
	"strings"
	"testing"

	"github.com/AZMindroma/dhbw-sem2-scientific-programming-lab/vector"
)

const seedYAML = `
documents:
  - id: a
    vector: [0, 0, 1]
  - id: b
    vector: [0, 1, 0]
  - id: c
    vector: [1, 0, 0]
`

func TestLoadYAML(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	ids, err := LoadYAML(ctx, store, strings.NewReader(seedYAML))
	if err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("LoadYAML stored %d ids, want 3", len(ids))
	}
	doc, err := store.Get(ctx, "c")
	if err != nil {
		t.Fatalf("Get(c) failed: %v", err)
	}
	if !doc.Vector.Equal(vector.New(1, 0, 0)) {
		t.Fatalf("Get(c) = %v, want <1, 0, 0>", doc.Vector)
	}
}

func TestLoadYAML_Errors(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	if ids, err := LoadYAML(ctx, store, strings.NewReader("")); err != nil || ids != nil {
		t.Fatalf("LoadYAML(empty) = %v, %v; want nil, nil", ids, err)
	}
	if _, err := LoadYAML(ctx, store, strings.NewReader("documents:\n  - id: a\n    vektor: [1]\n")); err == nil {
		t.Fatalf("LoadYAML with unknown field succeeded, want error")
	}
	if _, err := LoadYAML(ctx, store, strings.NewReader("documents:\n  - id: a\n    vector: 3\n")); err == nil {
		t.Fatalf("LoadYAML with scalar vector succeeded, want error")
	}
}
