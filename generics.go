// Package generics is the root of the Clean Generics module.
//
// The containers live in subpackages: cgtext for the byte string, cgarray for
// the growable array and cgfunc for callable values.
// This package holds the print entry point and module wide settings.
package generics

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"go.uber.org/zap"

	"cleangenerics.dev/generics/cgtext"
	"cleangenerics.dev/generics/internal/alloc"
)

const (
	VersionMajor = 1
	VersionMinor = 0
	// Version packs the major version above an 8 bit minor version.
	Version = VersionMajor<<8 | VersionMinor
)

// Renderer is implemented by values which can render themselves as text.
type Renderer = cgtext.Renderer

// SetLogger sets the logger which receives allocation events.
// Events are logged at debug level. nil disables logging.
func SetLogger(l *zap.Logger) {
	alloc.SetLogger(l)
}

// Print writes the text form of v and a newline to standard output.
func Print(v any) {
	// a failing stdout has nowhere to report to
	_ = Fprint(os.Stdout, v)
}

// Fprint writes the text form of v and a newline to w.
//
// Renderers and Buffers are written as their text, floats in fixed point
// with six decimals, bytes as a character, pointers in hex, and anything
// else the way fmt prints it.
func Fprint(w io.Writer, v any) error {
	var line cgtext.Buffer
	switch x := v.(type) {
	case Renderer:
		line = x.Render()
	case float32:
		line = cgtext.FromFloat(x)
	case float64:
		line = cgtext.FromFloat64(x)
	case byte:
		line = cgtext.FromChar(x)
	case int:
		line = cgtext.FromInt(x)
	case unsafe.Pointer:
		fmt.Fprintf(&line, "%p", x)
	case uintptr:
		fmt.Fprintf(&line, "%#x", x)
	default:
		fmt.Fprint(&line, x)
	}
	line.WriteByte('\n')
	_, err := w.Write(line.Bytes())
	return err
}
