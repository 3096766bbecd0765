// Package export writes snapshots of the scene: braille canvases and beat
// curves as SVG, and point clouds as CSV, JSON or YAML.
package export
