package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-hunt/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Fruit Hunt in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Up/Down, j/k - Move
  Enter        - Select / submit an answer
  ? or Tab     - Show the quiz hint
  Esc / b      - Back
  q, Ctrl+C    - Quit

Difficulty options (how soon hints appear on their own):
  easy   - after 2 wrong answers
  normal - after 3 wrong answers
  hard   - after 5 wrong answers

Examples:
  fruithunt play
  fruithunt play --profile maya
  fruithunt play --difficulty easy
  fruithunt play --engine json --db ./progress.json`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	a := mustOpenApp(cmd)
	defer a.Close()

	// Get terminal size before the program takes over the screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	ctx := cmd.Context()
	if err := tui.Run(ctx, a.deps(), width, height); err != nil {
		a.Close()
		fail("running game: %v", err)
	}
}
