package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-hunt/internal/progress"
)

var (
	flagSound     bool
	flagVibration bool
	flagDarkMode  bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Print the profile's settings. Pass a flag to change one.

Examples:
  fruithunt settings
  fruithunt settings --sound=false
  fruithunt settings --dark-mode --vibration=false`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagSound, "sound", true, "Sound effects")
	settingsCmd.Flags().BoolVar(&flagVibration, "vibration", true, "Vibration cues")
	settingsCmd.Flags().BoolVar(&flagDarkMode, "dark-mode", false, "Dark color theme")
}

// settingsUpdate builds an update from the flags actually given.
func settingsUpdate(cmd *cobra.Command) (progress.SettingsUpdate, bool) {
	var update progress.SettingsUpdate
	changed := false
	if cmd.Flags().Changed("sound") {
		update.SoundEffects = progress.Ptr(flagSound)
		changed = true
	}
	if cmd.Flags().Changed("vibration") {
		update.Vibration = progress.Ptr(flagVibration)
		changed = true
	}
	if cmd.Flags().Changed("dark-mode") {
		update.DarkMode = progress.Ptr(flagDarkMode)
		changed = true
	}
	return update, changed
}

func runSettings(cmd *cobra.Command, _ []string) {
	a := mustOpenApp(cmd)
	defer a.Close()
	ctx := cmd.Context()

	s, err := a.store(ctx)
	if err != nil {
		a.Close()
		fail("%v", err)
	}

	if update, ok := settingsUpdate(cmd); ok {
		if err := s.UpdateSettings(ctx, update); err != nil {
			a.Close()
			fail("%v", err)
		}
	}

	st := s.Settings()
	fmt.Printf("sound:      %s\n", onOff(st.SoundEffects))
	fmt.Printf("vibration:  %s\n", onOff(st.Vibration))
	fmt.Printf("dark mode:  %s\n", onOff(st.DarkMode))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
