package flattree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildFolders creates
//
//	. Users
//	├── jhon_doe
//	│   ├── file1.rs
//	│   └── file2.rs
//	└── jane_doe
//	    └── cat.jpg
func buildFolders() *Tree[string] {
	tree := WithCapacity("Users", 6)
	root := tree.RootMut()
	child := root.Push("jhon_doe")
	child.Push("file1.rs")
	child.Push("file2.rs")
	child = root.Push("jane_doe")
	child.Push("cat.jpg")
	return tree
}

// buildNumbers creates a tree of 15 nodes, where every node holds its own id.
func buildNumbers() *Tree[int] {
	tree := WithCapacity(0, 5)
	root := tree.RootMut()
	root.Push(1).Push(2)
	child3 := root.Push(3)
	child3.Push(4).Push(5)
	child3.Push(6)
	child7 := root.Push(7)
	child8 := child7.Push(8)
	child8.Push(9)
	child8.Push(10)
	child11 := child7.Push(11)
	child11.Push(12)
	child11.Push(13)
	child7.Push(14)
	return tree
}

func TestNewTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flattree")
	defer teardown()
	//
	tree := New("root")
	if tree.Len() != 1 || tree.IsEmpty() {
		t.Fatalf("expected tree with single root, have len=%d", tree.Len())
	}
	if v, ok := tree.Get(RootID); !ok || v != "root" {
		t.Errorf("expected root value 'root', have %q (%v)", v, ok)
	}
	if tree.Levels()[0] != 0 || tree.Parents()[0] != RootID {
		t.Errorf("root must be level 0 and its own parent")
	}
	var nilTree *Tree[int]
	if !nilTree.IsEmpty() || nilTree.Len() != 0 {
		t.Errorf("nil tree should be empty")
	}
}

func TestFolderMimic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flattree")
	defer teardown()
	//
	tree := buildFolders()
	wantValues := []string{"Users", "jhon_doe", "file1.rs", "file2.rs", "jane_doe", "cat.jpg"}
	if !slices.Equal(tree.Values(), wantValues) {
		t.Errorf("values = %v, want %v", tree.Values(), wantValues)
	}
	if !slices.Equal(tree.Levels(), []int{0, 1, 2, 2, 1, 2}) {
		t.Errorf("levels = %v", tree.Levels())
	}
	if !slices.Equal(tree.Parents(), []NodeID{0, 0, 1, 1, 0, 4}) {
		t.Errorf("parents = %v", tree.Parents())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected valid tree, have %v", err)
	}
}

func TestCreateNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flattree")
	defer teardown()
	//
	tree := buildNumbers()
	if tree.Len() != 15 {
		t.Errorf("expected 15 nodes, have %d", tree.Len())
	}
	if len(tree.Values()) != 15 || len(tree.Levels()) != 15 || len(tree.Parents()) != 15 {
		t.Errorf("slices not aligned")
	}
	for i, v := range tree.Values() {
		if v != i {
			t.Errorf("expected value %d at index %d, have %d", i, i, v)
		}
	}
	wantParents := []NodeID{0, 0, 1, 0, 3, 4, 3, 0, 7, 8, 8, 7, 11, 11, 7}
	if !slices.Equal(tree.Parents(), wantParents) {
		t.Errorf("parents = %v, want %v", tree.Parents(), wantParents)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected valid tree, have %v", err)
	}
}

func TestAppendOnlyGrowth(t *testing.T) {
	tree := New(0)
	cursor := tree.RootMut()
	for i := 1; i <= 20; i++ {
		before := tree.Len()
		if i%3 == 0 {
			cursor = tree.RootMut().Push(i)
		} else {
			cursor = cursor.Push(i)
		}
		if tree.Len() != before+1 {
			t.Fatalf("push #%d: len went from %d to %d", i, before, tree.Len())
		}
		if cursor.ID() != NodeID(before) {
			t.Errorf("push #%d: new node should have id %d, has %d", i, before, cursor.ID())
		}
		if len(tree.Levels()) != tree.Len() || len(tree.Parents()) != tree.Len() {
			t.Fatalf("push #%d: slices not aligned", i)
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	tree := buildFolders()
	for _, id := range []NodeID{6, 100, -1} {
		if v, ok := tree.Get(id); ok || v != "" {
			t.Errorf("Get(%s) should not find anything, found %q", id, v)
		}
		if _, ok := tree.Node(id); ok {
			t.Errorf("Node(%s) should not find anything", id)
		}
		if _, ok := tree.NodeMut(id); ok {
			t.Errorf("NodeMut(%s) should not find anything", id)
		}
	}
	if v, ok := tree.Get(5); !ok || v != "cat.jpg" {
		t.Errorf("Get(5) = %q, want cat.jpg", v)
	}
}

func TestNodeMutFromID(t *testing.T) {
	tree := buildFolders()
	jane, ok := tree.NodeMut(4)
	if !ok {
		t.Fatal("expected cursor for node 4")
	}
	if jane.Level() != 1 || jane.Node().Value() != "jane_doe" {
		t.Errorf("unexpected cursor %v at level %d", jane.Node(), jane.Level())
	}
	dog := jane.Push("dog.png")
	if dog.Level() != 2 || dog.Node().Parent() != 4 {
		t.Errorf("expected dog.png at level 2 below node 4")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("pushing under open node broke tree: %v", err)
	}
}

func TestIsOpen(t *testing.T) {
	tree := New("r")
	root := tree.RootMut()
	a := root.Push("a")
	a1 := a.Push("a1")
	if !root.IsOpen() || !a.IsOpen() || !a1.IsOpen() {
		t.Errorf("all nodes on the rightmost path should be open")
	}
	b := root.Push("b")
	if a.IsOpen() || a1.IsOpen() {
		t.Errorf("subtree of a has been left, should be closed")
	}
	if !b.IsOpen() || !root.IsOpen() {
		t.Errorf("root and b should be open")
	}
	if debugChecks {
		t.Skip("pushing under a closed node panics with flattree_debug")
	}
	a.Push("late") // breaks pre-order
	if err := tree.Check(); !errors.Is(err, ErrNotPreOrder) {
		t.Errorf("expected ErrNotPreOrder, have %v", err)
	}
}

func TestCheckDetectsBadAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flattree")
	defer teardown()
	//
	tree := New("r")
	tree.Append("x", 2, RootID) // level skips one
	if err := tree.Check(); !errors.Is(err, ErrNotPreOrder) {
		t.Errorf("expected level mismatch to be detected, have %v", err)
	}
	tree = New("r")
	tree.Append("x", 1, 5) // parent does not precede
	if err := tree.Check(); !errors.Is(err, ErrNotPreOrder) {
		t.Errorf("expected forward parent to be detected, have %v", err)
	}
	var empty Tree[string]
	if err := empty.Check(); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected empty tree to be rejected, have %v", err)
	}
}

func TestAppendWithLevels(t *testing.T) {
	// build the folder tree the flat way, as a directory walker would
	tree := New("Users")
	jhon := tree.Append("jhon_doe", 1, RootID)
	tree.Append("file1.rs", 2, jhon)
	tree.Append("file2.rs", 2, jhon)
	jane := tree.Append("jane_doe", 1, RootID)
	tree.Append("cat.jpg", 2, jane)
	if !Equal(tree, buildFolders()) {
		t.Errorf("trees built by Append and by Push should be equal")
	}
}

func TestEqualAndClone(t *testing.T) {
	a := buildNumbers()
	b := a.Clone()
	if !Equal(a, b) {
		t.Fatalf("clone should equal original")
	}
	b.RootMut().Push(15)
	if Equal(a, b) {
		t.Errorf("trees of different length should differ")
	}
	if a.Len() != 15 {
		t.Errorf("pushing to clone must not change original")
	}
	c := buildNumbers()
	c.values[3] = 33
	if Equal(a, c) {
		t.Errorf("trees with different values should differ")
	}
	strs := buildFolders()
	lens := New(5)
	lens.RootMut().Push(8)
	if EqualFunc(strs, lens, func(s string, n int) bool { return len(s) == n }) {
		t.Errorf("EqualFunc should respect length")
	}
	var nilA, nilB *Tree[int]
	if !Equal(nilA, nilB) {
		t.Errorf("nil trees should be equal")
	}
}

func TestNodeIDString(t *testing.T) {
	if s := NodeID(7).String(); s != "NodeID(7)" {
		t.Errorf("unexpected NodeID string %q", s)
	}
}
