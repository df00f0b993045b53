// Package geometry lays out an N×N grid of cells inside a square area and
// resolves pointer coordinates to cells.
//
// The cell side s and margin m satisfy N*s + (N+1)*m = W with m = s/4, so
// s = 4W / (5N + 1). Every cell carries a trailing right and bottom margin;
// the first row and column additionally carry a leading margin.
//
// Hit-testing uses each cell's bounds shrunk by 15% of s on all sides. The
// region is a rectangle, not the circle a renderer draws.
package geometry
