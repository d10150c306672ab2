// Package region indexes cell-aligned wall rectangles in an R-tree so a
// scenario or UI can paint whole blocks of obstacles at once.
//
// A Rect covers the half-open cell range [X, X+Width) × [Y, Y+Height).
// Index answers "is this cell covered", "which rects overlap this one" and
// "which nodes of this graph are covered" without scanning every rect.
//
// Errors
//
//   - ErrEmptyRect for rectangles with a non-positive width or height.
package region
