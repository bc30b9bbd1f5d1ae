// Package elements provides the built-in themed element descriptions. Each
// variant registers itself with element.Default when the package is
// imported; defaults follow the toolkit's stock "glass" look.
package elements
