package main

import (
	"go.brendoncarroll.net/star"

	"cleangenerics.dev/generics/cgcmd"
)

func main() {
	star.Main(cgcmd.Root())
}
