package alphabeta

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", SeedGeneratorFn())

	os.Exit(m.Run())
}

// Walks the tree and calls f with every leaf and its depth
func walkLeaves(t *testing.T, node Node, depth int, f func(leaf *Leaf, depth int)) {
	t.Helper()
	switch n := node.(type) {
	case *Leaf:
		f(n, depth)
	case *Internal:
		for _, child := range n.Children() {
			walkLeaves(t, child, depth+1, f)
		}
	default:
		t.Fatalf("unexpected node variant %T", node)
	}
}

func seq(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

func TestGenLeafCount(t *testing.T) {
	cases := []struct {
		depth, branching, leaves int
	}{
		{0, 1, 1},
		{1, 3, 3},
		{2, 2, 4},
		{3, 3, 27},
		{4, 2, 16},
	}

	gen := NewGenerator()
	for _, tc := range cases {
		values := NewLeafValues(seq(tc.leaves)...)
		root, err := gen.Gen(tc.depth, true, tc.branching, "A", values)
		if err != nil {
			t.Fatalf("Gen(depth=%d, br=%d) failed: %v", tc.depth, tc.branching, err)
		}

		if got := CountLeaves(root); got != tc.leaves {
			t.Errorf("depth=%d br=%d: expected %d leaves, got %d", tc.depth, tc.branching, tc.leaves, got)
		}
		if values.Remaining() != 0 {
			t.Errorf("depth=%d br=%d: %d values left unconsumed", tc.depth, tc.branching, values.Remaining())
		}

		// All leaves must sit at exactly the requested depth
		walkLeaves(t, root, 0, func(leaf *Leaf, depth int) {
			if depth != tc.depth {
				t.Errorf("leaf %q at depth %d, expected %d", leaf.Name(), depth, tc.depth)
			}
		})
	}
}

func TestGenPreOrderValues(t *testing.T) {
	// The i-th leaf in pre-order receives the i-th value of the sequence
	root, err := NewGenerator().Gen(2, true, 3, "A", NewLeafValues(seq(9)...))
	if err != nil {
		t.Fatal(err)
	}

	next := 1
	walkLeaves(t, root, 0, func(leaf *Leaf, _ int) {
		if leaf.Value() != next {
			t.Errorf("leaf %q: expected value %d, got %d", leaf.Name(), next, leaf.Value())
		}
		next++
	})
}

func TestGenNaming(t *testing.T) {
	// Root is a maximizing node, so its children get lowercase suffixes,
	// the minimizing nodes below label their children uppercase
	root, err := NewGenerator().Gen(2, true, 2, "A", NewLeafValues(seq(4)...))
	if err != nil {
		t.Fatal(err)
	}

	internal, ok := root.(*Internal)
	if !ok {
		t.Fatalf("root is %T, expected *Internal", root)
	}
	if internal.Name() != "A" {
		t.Errorf("root name %q, expected A", internal.Name())
	}

	expected := map[string][]string{
		"A-a": {"A-a-A", "A-a-B"},
		"A-b": {"A-b-A", "A-b-B"},
	}

	if len(internal.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(internal.Children()))
	}
	for i, name := range []string{"A-a", "A-b"} {
		child := internal.Children()[i].(*Internal)
		if child.Name() != name {
			t.Errorf("child %d named %q, expected %q", i, child.Name(), name)
		}
		for j, leafName := range expected[name] {
			leaf := child.Children()[j].(*Leaf)
			if leaf.Name() != leafName {
				t.Errorf("leaf %d of %q named %q, expected %q", j, name, leaf.Name(), leafName)
			}
		}
	}
}

func TestGenExhaustion(t *testing.T) {
	// 4 leaves needed, only 3 values supplied
	values := NewLeafValues(1, 2, 3)
	_, err := NewGenerator().Gen(2, true, 2, "A", values)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if values.Remaining() != 0 {
		t.Errorf("all supplied values should be consumed before failing, %d left", values.Remaining())
	}
}

func TestGenInvalidParams(t *testing.T) {
	gen := NewGenerator()

	if _, err := gen.Gen(-1, true, 3, "A", nil); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("negative depth: expected ErrInvalidParam, got %v", err)
	}
	if _, err := gen.Gen(2, true, 0, "A", nil); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("zero branching: expected ErrInvalidParam, got %v", err)
	}
	if _, err := gen.Gen(2, true, -3, "A", nil); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("negative branching: expected ErrInvalidParam, got %v", err)
	}
}

func TestGenRandomRange(t *testing.T) {
	gen := NewGenerator().
		SetRand(rand.New(rand.NewSource(7))).
		SetRandRange(-5, 5)

	root, err := gen.Gen(3, true, 3, "A", nil)
	if err != nil {
		t.Fatal(err)
	}

	walkLeaves(t, root, 0, func(leaf *Leaf, _ int) {
		if leaf.Value() < -5 || leaf.Value() > 5 {
			t.Errorf("leaf %q value %d out of [-5, 5]", leaf.Name(), leaf.Value())
		}
	})
}

func TestGenRandomReproducible(t *testing.T) {
	genTree := func() Node {
		gen := NewGenerator().SetRand(rand.New(rand.NewSource(123)))
		root, err := gen.Gen(2, true, 3, "A", nil)
		if err != nil {
			t.Fatal(err)
		}
		return root
	}

	first, second := genTree(), genTree()
	var values1, values2 []int
	walkLeaves(t, first, 0, func(leaf *Leaf, _ int) { values1 = append(values1, leaf.Value()) })
	walkLeaves(t, second, 0, func(leaf *Leaf, _ int) { values2 = append(values2, leaf.Value()) })

	for i := range values1 {
		if values1[i] != values2[i] {
			t.Fatalf("same seed produced different leaves: %v vs %v", values1, values2)
		}
	}
}

func TestLeafValuesCursor(t *testing.T) {
	input := []int{5, -3, 8}
	values := NewLeafValues(input...)

	if values.Remaining() != 3 {
		t.Fatalf("expected 3 remaining, got %d", values.Remaining())
	}

	for i, want := range input {
		got, ok := values.Pop()
		if !ok || got != want {
			t.Fatalf("pop %d: got (%d, %v), expected (%d, true)", i, got, ok, want)
		}
	}

	if _, ok := values.Pop(); ok {
		t.Error("pop on an empty cursor should report ok=false")
	}

	// The cursor owns a copy, mutating the input slice changes nothing
	fresh := NewLeafValues(input...)
	input[0] = 99
	if v, _ := fresh.Pop(); v != 5 {
		t.Errorf("cursor aliases the caller's slice, got %d", v)
	}
}

func TestTreeParams(t *testing.T) {
	params := DefaultTreeParams()
	if params.Depth != 3 || params.Branching != 3 || params.RootName != "A" || !params.RootMax {
		t.Fatalf("unexpected defaults: %s", params)
	}
	if params.Leaves() != 27 {
		t.Errorf("expected 27 leaves, got %d", params.Leaves())
	}

	params.SetDepth(2).SetBranching(4).SetRootName("R").SetRootMax(false)
	if params.Depth != 2 || params.Branching != 4 || params.RootName != "R" || params.RootMax {
		t.Fatalf("setters not applied: %s", params)
	}
	if params.Leaves() != 16 {
		t.Errorf("expected 16 leaves, got %d", params.Leaves())
	}

	root, err := NewGenerator().GenTree(params, NewLeafValues(seq(16)...))
	if err != nil {
		t.Fatal(err)
	}
	if root.Name() != "R" {
		t.Errorf("root named %q, expected R", root.Name())
	}
	if CountLeaves(root) != 16 {
		t.Errorf("expected 16 leaves, got %d", CountLeaves(root))
	}
}
