package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-hunt/internal/player"
)

var nameCmd = &cobra.Command{
	Use:   "name [name]",
	Short: "Show or set the explorer's name",
	Long: `Print the explorer's name, or set it. Names are 2 to 20 characters.

Examples:
  fruithunt name
  fruithunt name Maya
  fruithunt name "Little Sam" --profile sam`,
	Args: cobra.MaximumNArgs(1),
	Run:  runName,
}

var characterCmd = &cobra.Command{
	Use:   "character [id]",
	Short: "Show or choose the explorer character",
	Long: `List the explorer characters, or choose one by id.

Examples:
  fruithunt character
  fruithunt character priya`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCharacter,
}

func runName(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.Close()
	ctx := cmd.Context()

	s, err := a.store(ctx)
	if err != nil {
		a.Close()
		fail("%v", err)
	}

	if len(args) == 0 {
		fmt.Println(s.PlayerName())
		return
	}

	name, err := player.ValidateName(args[0])
	if err != nil {
		a.Close()
		fail("%v", err)
	}
	if err := s.SetPlayerName(ctx, name); err != nil {
		a.Close()
		fail("%v", err)
	}
	fmt.Printf("Hello, %s!\n", name)
}

func runCharacter(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.Close()
	ctx := cmd.Context()

	s, err := a.store(ctx)
	if err != nil {
		a.Close()
		fail("%v", err)
	}

	if len(args) == 0 {
		for _, c := range player.Characters() {
			mark := " "
			if c.ID == s.Character() {
				mark = "*"
			}
			fmt.Printf("%s %-6s %s %s\n", mark, c.ID, c.Glyph, c.Description)
		}
		return
	}

	id := strings.ToLower(strings.TrimSpace(args[0]))
	c, ok := player.CharacterByID(id)
	if !ok {
		a.Close()
		fail("unknown character %q (run 'fruithunt character' to list them)", args[0])
	}
	if err := s.SetCharacter(ctx, c.ID); err != nil {
		a.Close()
		fail("%v", err)
	}
	fmt.Printf("%s %s joins the hunt!\n", c.Glyph, c.Name)
}
