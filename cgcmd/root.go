// Package cgcmd implements the cg command line tool.
package cgcmd

import (
	"fmt"
	"strconv"
	"strings"

	"go.brendoncarroll.net/star"

	"cleangenerics.dev/generics"
	"cleangenerics.dev/generics/cgarray"
	"cleangenerics.dev/generics/cgtext"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "Clean Generics containers on the command line",
}, map[star.Symbol]star.Command{
	"render": render,
	"sum":    sum,
	"fmt":    fmtCmd,
	"words":  words,
})

var render = star.Command{
	Metadata: star.Metadata{
		Short: "print a comma separated list of integers as an array",
	},
	Pos: []star.IParam{IntsParam},
	F: func(c star.Context) error {
		a := IntsParam.Load(c)
		return generics.Fprint(c.StdOut, a)
	},
}

var sum = star.Command{
	Metadata: star.Metadata{
		Short: "print the sum of a comma separated list of integers",
	},
	Pos: []star.IParam{IntsParam},
	F: func(c star.Context) error {
		a := IntsParam.Load(c)
		return generics.Fprint(c.StdOut, cgarray.Sum(a))
	},
}

var fmtCmd = star.Command{
	Metadata: star.Metadata{
		Short: "format an integer, a float or a single character",
	},
	Pos: []star.IParam{scalarParam},
	F: func(c star.Context) error {
		return generics.Fprint(c.StdOut, scalarParam.Load(c))
	},
}

var words = star.Command{
	Metadata: star.Metadata{
		Short: "split text on spaces and print the words and how many are distinct",
	},
	Pos: []star.IParam{textParam},
	F: func(c star.Context) error {
		ws := SplitWords(textParam.Load(c))
		if err := generics.Fprint(c.StdOut, ws); err != nil {
			return err
		}
		in := cgtext.NewInterner(ws.Len() + 1)
		for w := range ws.Values() {
			in.Intern(w)
		}
		c.Printf("distinct: %d\n", in.Len())
		return nil
	},
}

var IntsParam = star.Param[cgarray.Array[int]]{
	Name:  "ints",
	Parse: ParseInts,
}

var scalarParam = star.Param[cgtext.Buffer]{
	Name:  "value",
	Parse: ParseScalar,
}

var textParam = star.Param[cgtext.Buffer]{
	Name: "text",
	Parse: func(x string) (cgtext.Buffer, error) {
		return cgtext.FromString(x), nil
	},
}

// ParseInts parses a comma separated list of integers. The empty string is the empty Array.
func ParseInts(x string) (cgarray.Array[int], error) {
	var out cgarray.Array[int]
	if strings.TrimSpace(x) == "" {
		return out, nil
	}
	parts := strings.Split(x, ",")
	out.Reserve(len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return cgarray.Array[int]{}, fmt.Errorf("parsing ints: %w", err)
		}
		out.Append(n)
	}
	return out, nil
}

// ParseScalar formats x through the cgtext constructor for its kind:
// an integer, then a float, then a single character.
func ParseScalar(x string) (cgtext.Buffer, error) {
	if n, err := strconv.Atoi(x); err == nil {
		return cgtext.FromInt(n), nil
	}
	if f, err := strconv.ParseFloat(x, 32); err == nil {
		return cgtext.FromFloat(float32(f)), nil
	}
	if len(x) == 1 {
		return cgtext.FromChar(x[0]), nil
	}
	return cgtext.Buffer{}, fmt.Errorf("%q is not an integer, a float or a single character", x)
}

// SplitWords splits x on runs of spaces.
func SplitWords(x cgtext.Buffer) cgarray.Array[cgtext.Buffer] {
	var out cgarray.Array[cgtext.Buffer]
	var word cgtext.Buffer
	for _, c := range x.All() {
		if c == ' ' {
			if word.Len() > 0 {
				out.AppendOwned(word.Move())
			}
			continue
		}
		word.WriteByte(c)
	}
	if word.Len() > 0 {
		out.AppendOwned(word.Move())
	}
	return out
}
