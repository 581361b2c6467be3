package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-hunt/internal/player"
	"github.com/vovakirdan/fruit-hunt/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show collection progress",
	Long: `Display per-region progress and totals for a profile.

Examples:
  fruithunt progress
  fruithunt progress --profile maya
  fruithunt progress --all`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

var flagAllProfiles bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget every collected fruit",
	Long: `Reset fruit progress for a profile. The explorer's name, character and
settings are kept.

Examples:
  fruithunt reset --yes
  fruithunt reset --profile maya --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

var flagResetYes bool

func init() {
	progressCmd.Flags().BoolVar(&flagAllProfiles, "all", false, "List every stored profile")
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Confirm the reset")
}

func runProgress(cmd *cobra.Command, _ []string) {
	a := mustOpenApp(cmd)
	defer a.Close()
	ctx := cmd.Context()

	if flagAllProfiles {
		profiles, err := a.backend.Profiles(ctx)
		if err != nil {
			a.Close()
			fail("listing profiles: %v", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No progress saved yet.")
			return
		}
		for _, p := range profiles {
			a.cfg.Storage.Profile = p
			s, err := a.store(ctx)
			if err != nil {
				a.logger.Warn("skipping profile", "profile", p, "error", err)
				continue
			}
			st := s.Stats()
			fmt.Printf("  %-20s %-20s %3d%%  %d/%d\n", p, s.PlayerName(), st.Percent, st.Collected, st.Total)
		}
		return
	}

	s, err := a.store(ctx)
	if err != nil {
		a.Close()
		fail("%v", err)
	}
	printProgress(os.Stdout, s)
}

// printProgress writes the per-region report of a store.
func printProgress(w io.Writer, s *progress.Store) {
	name := s.PlayerName()
	if c, ok := player.CharacterByID(s.Character()); ok {
		name += " (" + c.Name + ")"
	}
	fmt.Fprintf(w, "Explorer: %s   profile: %s\n\n", name, s.Profile())

	maxNameLen := 0
	for _, rs := range s.Regions() {
		maxNameLen = max(maxNameLen, len(rs.Region.DisplayName))
	}
	for _, rs := range s.Regions() {
		mark := ""
		if rs.Total > 0 && rs.Collected == rs.Total {
			mark = " complete"
		}
		fmt.Fprintf(w, "  %s %-*s  %s %3d%%  %2d/%-2d%s\n",
			rs.Region.Theme, maxNameLen, rs.Region.DisplayName,
			bar(rs.Percent, 20), rs.Percent, rs.Collected, rs.Total, mark)
	}

	st := s.Stats()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d/%d fruits (%d%%), %d/%d regions complete\n",
		st.Collected, st.Total, st.Percent, st.CompletedRegions, st.Regions)
	fmt.Fprintf(w, "Answers given: %d   Hints used: %d\n", st.Attempts, st.HintsUsed)
	if s.IsVictory() {
		fmt.Fprintln(w, "Every fruit collected. Well done!")
	}
}

func bar(percent, width int) string {
	filled := min(max(percent*width/100, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func runReset(cmd *cobra.Command, _ []string) {
	if !flagResetYes {
		fail("reset forgets every collected fruit; run again with --yes to confirm")
	}

	a := mustOpenApp(cmd)
	defer a.Close()
	ctx := cmd.Context()

	s, err := a.store(ctx)
	if err != nil {
		a.Close()
		fail("%v", err)
	}
	if err := s.ResetProgress(ctx); err != nil {
		a.Close()
		fail("%v", err)
	}
	fmt.Printf("Progress reset for profile %q.\n", s.Profile())
}
