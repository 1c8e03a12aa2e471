package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robot-arena/internal/config"
	"github.com/vovakirdan/robot-arena/internal/core"
)

var mapsCmd = &cobra.Command{
	Use:   "maps [name|path]",
	Short: "List built-in maps or draw one",
	Long: `Without arguments, lists the built-in maps. With a map name or a path to
a map YAML, draws the board: '#' obstacle, 'S' spawn cell, '.' floor.

Examples:
  arena maps
  arena maps duel
  arena maps ./my-map.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMaps,
}

func runMaps(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Built-in maps:")
		fmt.Println()
		for _, name := range config.BuiltinMaps() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Println("Run 'arena maps <name>' to draw one.")
		return nil
	}

	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}
	m, err := config.LoadMap(args[0])
	if err != nil {
		return err
	}
	board, err := m.Board(settings.BoardSize, settings.SpawnPerPlayer)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %dx%d, %d spawn cells\n\n", m.Name, board.Size(), board.Size(), len(board.SpawnCells()))
	fmt.Println(drawBoard(board).String())
	return nil
}

// drawBoard renders the board as plain text.
func drawBoard(b *core.Board) *core.Screen {
	s := core.NewScreen(b.Size(), b.Size())
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			r := '.'
			switch b.Classify(core.C(x, y)) {
			case core.KindObstacle:
				r = '#'
			case core.KindNormal | core.KindSpawn:
				r = 'S'
			}
			s.Set(x, y, r, core.ColorDefault)
		}
	}
	return s
}
