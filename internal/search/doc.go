// Package search walks a JSON tree and fires actions at nodes whose path
// ends with a registered path.
//
// Two traversals are provided: DocumentSearch walks a document.Document and
// re-wraps unverified children without verifying them, so only actions that
// call Verified pay for classification; ValueSearch walks an already typed
// value.Value. Both share the binding and dispatch rules:
//
//   - the walk is depth-first and pre-order, starting at path.Root;
//   - at each node, bindings are checked in registration order;
//   - a binding fires at most once per node, on the first of its paths that
//     the current path ends with;
//   - array elements are visited in index order, object members in an order
//     callers must not rely on;
//   - an error returned by an action stops the walk and is returned by Run
//     unchanged.
//
// A search may be Run any number of times. A single search must not be Run
// concurrently, nor have bindings added while running; distinct searches
// share no state.
//
//	err := search.NewDocument(doc).
//		On(path.ParseAll("users.0.name"), func(d document.Document) error {
//			name, err := d.Verified()
//			...
//		}).
//		Run()
package search
