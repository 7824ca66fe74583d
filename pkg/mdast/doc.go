// Package mdast models the markdown syntax tree consumed and produced by the
// progress passes. Node kinds and field names follow the mdast vocabulary so
// trees round-trip through the JSON emitted by remark-compatible parsers.
package mdast
