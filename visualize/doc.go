// Package visualize renders a sut.Graph as DOT, PNG, or SVG, for the
// -todot and -topng driver flags.
//
// PNG and SVG rendering share a layout-then-render split: buildLayout
// computes node coordinates once, then WritePNG (git.sr.ht/~sbinet/gg)
// and renderSVGToWriter (github.com/ajstarks/svgo) each walk the same
// layoutResult to draw it in their respective format.
package visualize
