// Package progress annotates markdown trees with task-list completion and
// labels list items with the progress of their sub-lists.
//
// Aggregate runs first and turns every reachable list into an
// mdast.AnnotatedList; Inject reads those annotations and prepends a
// "[NN%] " text node to the lead paragraph of each item that owns a
// sub-list. Both passes return new trees and never modify their input.
//
// Only root, blockquote, footnoteDefinition, list and listItem nodes are
// descended into. Every other kind is returned unchanged, children included,
// because markdown never places a list inside phrasing content.
package progress
