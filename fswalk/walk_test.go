package fswalk

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/npillmayer/flattree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func usersFS() fstest.MapFS {
	return fstest.MapFS{
		"Users/jhon_doe/file1.rs":   {Data: []byte("fn main() {}")},
		"Users/jhon_doe/file2.rs":   {Data: []byte("// empty")},
		"Users/jane_doe/cat.jpg":    {Data: []byte{0xff, 0xd8}},
		"Users/jane_doe/.DS_Store":  {Data: []byte{}},
		"Users/.hidden/secret.txt":  {Data: []byte("psst")},
		"Users/jane_doe/docs/a.txt": {Data: []byte("a")},
	}
}

func TestWalkUsers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flattree")
	defer teardown()
	//
	tree, err := Walk(context.Background(), usersFS(), "Users", Options{})
	require.NoError(t, err)
	t.Logf("\n%s", tree)

	require.Equal(t, []string{
		"Users",
		"Users/jane_doe",
		"Users/jane_doe/cat.jpg",
		"Users/jane_doe/docs",
		"Users/jane_doe/docs/a.txt",
		"Users/jhon_doe",
		"Users/jhon_doe/file1.rs",
		"Users/jhon_doe/file2.rs",
	}, tree.Values())
	require.Equal(t, []int{0, 1, 2, 2, 3, 1, 2, 2}, tree.Levels())
	require.Equal(t, []flattree.NodeID{0, 0, 1, 1, 3, 0, 5, 5}, tree.Parents())
	require.NoError(t, tree.Check())
}

func TestWalkFlatEqualsRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flattree")
	defer teardown()
	//
	tests := []struct {
		name string
		root string
		opts Options
	}{
		{"defaults", "Users", Options{}},
		{"hidden entries", "Users", Options{IncludeHidden: true}},
		{"max depth 1", "Users", Options{MaxDepth: 1}},
		{"max depth 2", "Users", Options{MaxDepth: 2}},
		{"skip jane", "Users", Options{Skip: func(name string) bool { return name == "jane_doe" }}},
		{"from fs root", ".", Options{}},
		{"sub-directory", "Users/jane_doe", Options{IncludeHidden: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			flat, err := Walk(ctx, usersFS(), tt.root, tt.opts)
			require.NoError(t, err)
			rec, err := WalkRecursive(ctx, usersFS(), tt.root, tt.opts)
			require.NoError(t, err)
			require.True(t, flattree.Equal(flat, rec),
				"trees differ:\n%s\nvs\n%s", flat, rec)
			require.NoError(t, flat.Check())
		})
	}
}

func TestWalkOptions(t *testing.T) {
	ctx := context.Background()
	tree, err := Walk(ctx, usersFS(), "Users", Options{MaxDepth: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"Users", "Users/jane_doe", "Users/jhon_doe"}, tree.Values())

	tree, err = Walk(ctx, usersFS(), "Users", Options{IncludeHidden: true})
	require.NoError(t, err)
	require.Equal(t, "Users/.hidden", tree.Values()[1])
	require.Contains(t, tree.Values(), "Users/jane_doe/.DS_Store")

	tree, err = WalkRecursive(ctx, usersFS(), "Users", Options{
		Skip: func(name string) bool { return filepath.Ext(name) == ".rs" },
	})
	require.NoError(t, err)
	require.NotContains(t, tree.Values(), "Users/jhon_doe/file1.rs")
	require.Contains(t, tree.Values(), "Users/jhon_doe")
}

func TestWalkSingleFile(t *testing.T) {
	tree, err := WalkRecursive(context.Background(), usersFS(), "Users/jhon_doe/file1.rs", Options{})
	require.NoError(t, err)
	require.Equal(t, 1, tree.Len())
	flat, err := Walk(context.Background(), usersFS(), "Users/jhon_doe/file1.rs", Options{})
	require.NoError(t, err)
	require.True(t, flattree.Equal(tree, flat))
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := Walk(context.Background(), usersFS(), "Nobody", Options{})
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist), "expected fs.ErrNotExist, got: %v", err)

	_, err = WalkRecursive(context.Background(), usersFS(), "Nobody", Options{})
	require.True(t, errors.Is(err, fs.ErrNotExist), "expected fs.ErrNotExist, got: %v", err)
}

func TestWalkPreCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Walk(ctx, usersFS(), "Users", Options{})
	require.True(t, errors.Is(err, context.Canceled), "expected context.Canceled, got: %v", err)

	_, err = WalkRecursive(ctx, usersFS(), "Users", Options{})
	require.True(t, errors.Is(err, context.Canceled), "expected context.Canceled, got: %v", err)
}

func TestWalkOSDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "b", "c.txt"), []byte("c"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d.txt"), []byte("d"), 0o644))

	tree, err := Walk(context.Background(), os.DirFS(dir), ".", Options{})
	require.NoError(t, err)
	require.Equal(t, []string{".", "a", "a/b", "a/b/c.txt", "d.txt"}, tree.Values())
	require.Equal(t, []int{0, 1, 2, 3, 1}, tree.Levels())
}

func TestWalkerProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flattree")
	defer teardown()
	//
	w := NewWalker(usersFS(), Options{})
	ch, err := w.Subscribe(context.Background(), 64)
	require.NoError(t, err)

	done := make(chan []Progress)
	go func() {
		var events []Progress
		for m := range ch {
			events = append(events, m.(Progress))
		}
		done <- events
	}()

	tree, err := w.Walk(context.Background(), "Users")
	require.NoError(t, err)
	w.Close()

	var events []Progress
	select {
	case events = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber channel not closed after walker has been closed")
	}
	require.NotEmpty(t, events)
	last := flattree.NodeID(-1)
	for _, e := range events {
		require.Greater(t, e.ID, last, "progress must follow pre-order")
		last = e.ID
		v, ok := tree.Get(e.ID)
		require.True(t, ok)
		require.Equal(t, v, e.Path)
		require.Equal(t, tree.Levels()[e.ID], e.Level)
	}

	_, err = w.Subscribe(context.Background(), 1)
	require.ErrorIs(t, err, ErrWalkerClosed)
}

func TestSubscribeAfterClose(t *testing.T) {
	w := NewWalker(usersFS(), Options{})
	w.Close()
	w.Close()
	ch, err := w.Subscribe(context.Background(), 1)
	require.ErrorIs(t, err, ErrWalkerClosed)
	require.Nil(t, ch)
}
