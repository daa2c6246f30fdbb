// Package render turns solver output into pictures.
//
// A [Canvas] covers the unit square at a fixed pixel resolution, with y
// pointing up. [Canvas.DrawGrid] colours each pixel from the matching grid
// cell through a [ColorMap]; the grid must have exactly one value per pixel.
// [Canvas.DrawBoundary] strokes a boundary on top, anti-aliased.
package render
