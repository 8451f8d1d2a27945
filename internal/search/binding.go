package search

import (
	"slices"

	"github.com/jacoelho/jseek/internal/path"
)

// Action is called with the node found at a matching path.
type Action[T any] func(node T) error

// Visitor is called with the matching path and the node found there. The
// path is a copy the visitor may keep.
type Visitor[T any] func(at path.Path, node T) error

type binding[T any] struct {
	paths []path.Path
	visit Visitor[T]
}

func (b binding[T]) matches(current path.Path) bool {
	return slices.ContainsFunc(b.paths, current.EndsWith)
}

type bindings[T any] []binding[T]

func (bs *bindings[T]) add(paths []path.Path, visit Visitor[T]) {
	*bs = append(*bs, binding[T]{paths: slices.Clone(paths), visit: visit})
}

func (bs bindings[T]) dispatch(current path.Path, node T) error {
	for _, b := range bs {
		if !b.matches(current) {
			continue
		}
		if err := b.visit(current.Clone(), node); err != nil {
			return err
		}
	}
	return nil
}

func actionVisitor[T any](action Action[T]) Visitor[T] {
	return func(_ path.Path, node T) error {
		return action(node)
	}
}
