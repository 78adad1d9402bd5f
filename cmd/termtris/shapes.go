package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/tetris"
)

var (
	flagRotations bool
	flagNoColor   bool
)

// kindPrinters approximate the in-game palette with the 16 basic colors;
// L has no orange here and borrows bright red.
var kindPrinters = map[tetris.Kind]*color.Color{
	tetris.KindI: color.New(color.FgCyan),
	tetris.KindJ: color.New(color.FgBlue),
	tetris.KindL: color.New(color.FgHiRed),
	tetris.KindO: color.New(color.FgYellow),
	tetris.KindS: color.New(color.FgGreen),
	tetris.KindZ: color.New(color.FgRed),
	tetris.KindT: color.New(color.FgMagenta),
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the seven piece shapes",
	Long: `Prints the 4x4 spawn bitmap of every piece kind.
With --rotations, each bitmap is followed by its three clockwise turns.
Color is disabled automatically when stdout is not a terminal or NO_COLOR
is set.`,
	Run: runShapes,
}

func init() {
	shapesCmd.Flags().BoolVar(&flagRotations, "rotations", false, "Also print clockwise rotations")
	shapesCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func runShapes(_ *cobra.Command, _ []string) {
	if flagNoColor {
		color.NoColor = true
	}

	turns := 1
	if flagRotations {
		turns = 4
	}

	for _, k := range tetris.Kinds() {
		paint := kindPrinters[k]
		fmt.Println(paint.Sprint(k.String()))

		// Lay the rotations out side by side
		rows := make([]string, tetris.BitmapWidth)
		bm := tetris.Shape(k)
		for range turns {
			for y, line := range strings.Split(bm.String(), "\n") {
				rows[y] += strings.ReplaceAll(line, "#", paint.Sprint("#")) + "  "
			}
			bm = bm.Rotate(tetris.Clockwise)
		}
		for _, row := range rows {
			fmt.Println(strings.TrimRight(row, " "))
		}
		fmt.Println()
	}
}
