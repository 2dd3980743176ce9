// Package imaging handles the image side of maze solving: decoding input
// files, drawing the solved path and encoding the result.
//
// The maze core never touches files or pixel formats. This package turns a
// file into an image.Image for the grid builder and turns a path back into
// pixels.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Grid coordinates are relative to the image's Bounds().Min, so a decoded
// image whose origin is not (0,0) still maps pixel-for-cell onto the grid.
//
// # Formats
//
// Decoding supports PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Encoding supports PNG, JPEG and BMP
// through bild's imgio encoders, chosen by output file extension.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Images returned by the
// cache are shared; drawing always happens on a copy made by NewCanvas.
//
// # Error Handling
//
// Functions return errors for:
//   - File I/O errors during image loading or saving
//   - Undecodable input and unsupported output extensions
//   - Malformed hex colour strings
package imaging
