// Package emit renders wave sets as text for pasting into the renderer's configuration.
package emit

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"tidegen.dev/internal/generr"
	"tidegen.dev/internal/waves"
)

// Format names an output layout.
type Format string

const (
	// Snippet is the `this.n = ...; this.s = [...]` block for the ocean constructor.
	Snippet Format = "snippet"
	// GLSL declares fixed-size uniform arrays with indexed initializers.
	GLSL Format = "glsl"
)

// ParseFormat maps a flag value to a Format; empty selects Snippet.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", Snippet:
		return Snippet, nil
	case GLSL:
		return GLSL, nil
	}
	return "", generr.Invalid("unknown output format %q", s)
}

// Write renders set in the given format.
func Write(w io.Writer, set waves.Set, f Format) error {
	switch f {
	case Snippet:
		return WriteSnippet(w, set)
	case GLSL:
		return WriteGLSL(w, set)
	}
	return generr.Invalid("unknown output format %q", string(f))
}

// WriteSnippet writes
//
//	this.n = <int>;
//	this.s = [<float>, ...];
//	this.l = [<float>, ...];
//	this.v = [<float>, ...];
//	this.dir = [vec3(<float>, 0, <float>),
//	...];
func WriteSnippet(w io.Writer, set waves.Set) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "this.n = %d;\n", set.Len())
	fmt.Fprintf(bw, "this.s = [%s];\n", joinFloats(set.Steepness(), FormatFloat))
	fmt.Fprintf(bw, "this.l = [%s];\n", joinFloats(set.Wavelengths(), FormatFloat))
	fmt.Fprintf(bw, "this.v = [%s];\n", joinFloats(set.Velocities(), FormatFloat))
	bw.WriteString("this.dir = [")
	for _, d := range set.Directions() {
		fmt.Fprintf(bw, "vec3(%s, 0, %s),\n", FormatFloat(d.X), FormatFloat(d.Y))
	}
	bw.WriteString("];\n")
	return bw.Flush()
}

// WriteGLSL writes array declarations followed by one initializer per element,
// each value rounded to one fractional digit.
func WriteGLSL(w io.Writer, set waves.Set) error {
	n := set.Len()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "int num_waves = %d;\n", n)
	fmt.Fprintf(bw, "float steepness[%d];\n", n)
	fmt.Fprintf(bw, "float wave_length[%d];\n", n)
	fmt.Fprintf(bw, "float speed[%d];\n", n)
	fmt.Fprintf(bw, "vec3 direction[%d];\n", n)

	writeInits := func(name string, xs []float64) {
		bw.WriteString("\n")
		for i, v := range xs {
			fmt.Fprintf(bw, "    %s[%d] = %s;\n", name, i, fixed1(v))
		}
	}
	writeInits("steepness", set.Steepness())
	writeInits("wave_length", set.Wavelengths())
	writeInits("speed", set.Velocities())
	bw.WriteString("\n")
	for i, d := range set.Directions() {
		fmt.Fprintf(bw, "    direction[%d] = vec3(%s, %s, %s);\n", i, fixed1(d.X), fixed1(0), fixed1(d.Y))
	}
	return bw.Flush()
}

// FormatFloat renders the shortest round-trip form, keeping a ".0" on integral values
// and switching to exponent form outside [1e-4, 1e16).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	a := math.Abs(v)
	if a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func fixed1(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if s == "-0.0" {
		return "0.0"
	}
	return s
}

func joinFloats(xs []float64, f func(float64) string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = f(x)
	}
	return strings.Join(parts, ", ")
}
