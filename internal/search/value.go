package search

import (
	"github.com/jacoelho/jseek/internal/path"
	"github.com/jacoelho/jseek/internal/value"
)

// ValueSearch walks a value.Value.
type ValueSearch struct {
	root     value.Value
	bindings bindings[value.Value]
}

func NewValue(root value.Value) *ValueSearch {
	return &ValueSearch{root: root}
}

// On registers action for nodes whose path ends with any of paths.
func (s *ValueSearch) On(paths []path.Path, action Action[value.Value]) *ValueSearch {
	s.bindings.add(paths, actionVisitor(action))
	return s
}

// OnVisit is On for visitors that also want the matching path.
func (s *ValueSearch) OnVisit(paths []path.Path, visit Visitor[value.Value]) *ValueSearch {
	s.bindings.add(paths, visit)
	return s
}

// Run walks the whole tree once.
func (s *ValueSearch) Run() error {
	var current path.Path
	return s.visit(&current, s.root)
}

func (s *ValueSearch) visit(current *path.Path, node value.Value) error {
	if err := s.bindings.dispatch(*current, node); err != nil {
		return err
	}

	switch node.Kind() {
	case value.ArrayKind:
		for i, child := range node.Elements() {
			if err := s.descend(current, path.Offset(i), child); err != nil {
				return err
			}
		}
	case value.ObjectKind:
		for key, child := range node.Members() {
			if err := s.descend(current, path.Key(key), child); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *ValueSearch) descend(current *path.Path, c path.Component, child value.Value) error {
	current.Push(c)
	defer current.Pop()

	return s.visit(current, child)
}
