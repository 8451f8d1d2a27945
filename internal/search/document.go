package search

import (
	"github.com/jacoelho/jseek/internal/document"
	"github.com/jacoelho/jseek/internal/path"
	"github.com/jacoelho/jseek/internal/value"
)

// DocumentSearch walks a document.Document.
type DocumentSearch struct {
	root     document.Document
	bindings bindings[document.Document]
}

func NewDocument(root document.Document) *DocumentSearch {
	return &DocumentSearch{root: root}
}

// On registers action for nodes whose path ends with any of paths.
func (s *DocumentSearch) On(paths []path.Path, action Action[document.Document]) *DocumentSearch {
	s.bindings.add(paths, actionVisitor(action))
	return s
}

// OnVisit is On for visitors that also want the matching path.
func (s *DocumentSearch) OnVisit(paths []path.Path, visit Visitor[document.Document]) *DocumentSearch {
	s.bindings.add(paths, visit)
	return s
}

// Run walks the whole document once. Besides action errors, it fails when a
// child cannot be classified while being re-wrapped.
func (s *DocumentSearch) Run() error {
	var current path.Path
	return s.visit(&current, s.root)
}

func (s *DocumentSearch) visit(current *path.Path, node document.Document) error {
	if err := s.bindings.dispatch(*current, node); err != nil {
		return err
	}

	switch node.Kind() {
	case value.ArrayKind:
		for i := range node.Len() {
			child, err := node.Index(i)
			if err != nil {
				return err
			}
			if err := s.descend(current, path.Offset(i), child); err != nil {
				return err
			}
		}
	case value.ObjectKind:
		for _, key := range node.Keys() {
			child, err := node.Key(key)
			if err != nil {
				return err
			}
			if err := s.descend(current, path.Key(key), child); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *DocumentSearch) descend(current *path.Path, c path.Component, child document.Document) error {
	current.Push(c)
	defer current.Pop()

	return s.visit(current, child)
}
