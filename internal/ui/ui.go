// Package ui provides the terminal output helpers shared by all phases:
// separators and green phase banners, so failures can be attributed to a
// phase by reading the output.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const separatorWidth = 70

var green = color.New(color.FgGreen)

// Printer writes phase banners and separators to a single destination.
type Printer struct {
	W io.Writer
}

// Separator prints a horizontal rule between phases.
func (p Printer) Separator() {
	fmt.Fprintln(p.W, strings.Repeat("=", separatorWidth))
}

// Green prints a highlighted progress line.
func (p Printer) Green(format string, args ...any) {
	green.Fprintf(p.W, format+"\n", args...)
}

// Plain prints an unstyled line.
func (p Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.W, format+"\n", args...)
}
