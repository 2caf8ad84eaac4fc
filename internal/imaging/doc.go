// Package imaging provides the pixel grid abstraction and the image file
// boundary for the deskew tool.
//
// The central type is Grid: a rectangular, row-major grayscale raster with
// one 8-bit intensity sample per pixel. The skew engine consumes and produces
// Grids only; decoding, encoding, and color conversion happen here at the
// boundary.
//
// # Coordinate System
//
// All pixel coordinates are 0-based: X increases rightward, Y increases
// downward, (0,0) is the top-left sample. Rows are stored contiguously with
// stride equal to the grid width.
//
// # Ownership
//
// A Grid is a plain value owned by whichever scope holds it. Functions in
// this package and in the deskew engine never retain a reference to an input
// Grid after returning; outputs are freshly allocated. Concurrent readers of
// a shared Grid are safe as long as nobody mutates it.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as non-positive dimensions,
// file I/O failures during load, and encoding failures during save.
package imaging
