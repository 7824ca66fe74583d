// Package markdown is the host side of the progress passes: it loads Markdown
// files, strips front matter, parses the body with goldmark into an mdast
// tree, and runs the aggregation and label injection over the result.
package markdown
