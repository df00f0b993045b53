// Package terminal maps between terminal character cells and the square
// coordinate space the pattern grid is laid out in.
//
// Terminal rows are roughly twice as tall as columns, so one column spans
// parameter.TerminalScaleX grid units and one row spans
// parameter.TerminalScaleY. The grid is centered in the area left between
// the banner and the status bar.
package terminal
