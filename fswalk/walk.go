package fswalk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/flattree"
)

// ErrWalkerClosed is returned when using a walker after Close has been called.
var ErrWalkerClosed = errors.New("fswalk: walker closed")

// Options control which entries of a directory hierarchy become tree nodes.
type Options struct {
	IncludeHidden bool                   // include entries with names starting with '.'
	Skip          func(name string) bool // ignore entries for which Skip returns true
	MaxDepth      int                    // do not descend deeper than MaxDepth; 0 means unlimited
}

func (opts Options) ignore(name string) bool {
	if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
		return true
	}
	return opts.Skip != nil && opts.Skip(name)
}

func (opts Options) tooDeep(level int) bool {
	return opts.MaxDepth > 0 && level > opts.MaxDepth
}

// Progress is published to subscribers of a walker for every node added to
// the tree.
type Progress struct {
	ID    flattree.NodeID
	Path  string
	Level int
	IsDir bool
}

// Walker builds trees from a file system. Tree nodes hold the slash-separated
// paths of entries, as used by package io/fs.
//
// A walker broadcasts progress to its subscribers. Subscribers have to drain
// their channels, otherwise walking will block.
type Walker struct {
	fsys   fs.FS
	opts   Options
	cast   *caster.Caster // we will broadcast messages when nodes are added
	closed atomic.Bool
}

// NewWalker creates a walker for a file system.
func NewWalker(fsys fs.FS, opts Options) *Walker {
	return &Walker{
		fsys: fsys,
		opts: opts,
		cast: caster.New(nil),
	}
}

// Subscribe returns a channel on which Progress messages will be delivered.
// The channel is closed when the walker is closed or ctx is done.
func (w *Walker) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, error) {
	if w.closed.Load() {
		return nil, ErrWalkerClosed
	}
	ch, ok := w.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrWalkerClosed
	}
	return ch, nil
}

// Close stops broadcasting and closes all subscriber channels. Closing a
// walker more than once has no effect.
func (w *Walker) Close() {
	if w.closed.Swap(true) {
		return
	}
	w.cast.Close()
}

func (w *Walker) publish(id flattree.NodeID, p string, level int, isDir bool) {
	w.cast.Pub(Progress{ID: id, Path: p, Level: level, IsDir: isDir})
}

// Walk builds a tree from the hierarchy below root, using fs.WalkDir.
// Entries are visited in lexical order. The root of the tree holds root.
//
// Walk keeps a stack of the directories which are open for appending; an
// entry's parent is found on top of the stack after popping every directory
// the entry is not part of.
func (w *Walker) Walk(ctx context.Context, root string) (*flattree.Tree[string], error) {
	tree := flattree.New(root)
	type openDir struct {
		path string
		id   flattree.NodeID
	}
	stack := []openDir{{path: root, id: flattree.RootID}}
	err := fs.WalkDir(w.fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if p == root {
			w.publish(flattree.RootID, p, 0, d.IsDir())
			return nil
		}
		if w.opts.ignore(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		dir := path.Dir(p)
		for len(stack) > 1 && stack[len(stack)-1].path != dir {
			stack = stack[:len(stack)-1]
		}
		level := len(stack)
		id := tree.Append(p, level, stack[len(stack)-1].id)
		w.publish(id, p, level, d.IsDir())
		if d.IsDir() {
			if w.opts.tooDeep(level + 1) {
				return fs.SkipDir
			}
			stack = append(stack, openDir{path: p, id: id})
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("walk %s: %v", root, err)
		return nil, fmt.Errorf("fswalk: walking %s: %w", root, err)
	}
	tracer().Debugf("walk %s: %d nodes", root, tree.Len())
	return tree, nil
}

// WalkRecursive builds a tree from the hierarchy below root by descending
// into directories recursively. The result is equal to the one of Walk.
func (w *Walker) WalkRecursive(ctx context.Context, root string) (*flattree.Tree[string], error) {
	info, err := fs.Stat(w.fsys, root)
	if err != nil {
		return nil, fmt.Errorf("fswalk: walking %s: %w", root, err)
	}
	tree := flattree.New(root)
	w.publish(flattree.RootID, root, 0, info.IsDir())
	if info.IsDir() {
		if err := w.walkDir(ctx, tree.RootMut(), root); err != nil {
			tracer().Errorf("walk %s: %v", root, err)
			return nil, fmt.Errorf("fswalk: walking %s: %w", root, err)
		}
	}
	tracer().Debugf("walk %s: %d nodes", root, tree.Len())
	return tree, nil
}

// walkDir pushes the entries of directory dir under parent. Note how entries
// are added to the parent of the branch, and the cursor of a sub-directory is
// handed down before the next entry is pushed.
func (w *Walker) walkDir(ctx context.Context, parent flattree.NodeMut[string], dir string) error {
	level := parent.Level() + 1
	if w.opts.tooDeep(level) {
		return nil
	}
	entries, err := fs.ReadDir(w.fsys, dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.opts.ignore(entry.Name()) {
			continue
		}
		p := path.Join(dir, entry.Name())
		child := parent.Push(p)
		w.publish(child.ID(), p, level, entry.IsDir())
		if entry.IsDir() {
			if err := w.walkDir(ctx, child, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Walk builds a tree from the hierarchy below root, without progress
// reporting. See Walker.Walk.
func Walk(ctx context.Context, fsys fs.FS, root string, opts Options) (*flattree.Tree[string], error) {
	w := NewWalker(fsys, opts)
	defer w.Close()
	return w.Walk(ctx, root)
}

// WalkRecursive is like Walk, but descends into directories recursively.
// See Walker.WalkRecursive.
func WalkRecursive(ctx context.Context, fsys fs.FS, root string, opts Options) (*flattree.Tree[string], error) {
	w := NewWalker(fsys, opts)
	defer w.Close()
	return w.WalkRecursive(ctx, root)
}
