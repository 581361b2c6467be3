// fruithunt is a fruit-collecting quiz adventure for the terminal.
//
// Usage:
//
//	fruithunt play                 - Play in this terminal
//	fruithunt serve                - Start SSH server for remote play
//	fruithunt regions              - List regions and their fruits
//	fruithunt progress             - Show collection progress
//	fruithunt reset --yes          - Forget every collected fruit
//	fruithunt name <name>          - Set the explorer's name
//	fruithunt character <id>       - Choose the explorer character
//	fruithunt settings             - Show or change settings
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.fruithunt, ./configs, embedded)
//	--db <path>          - Progress database path
//	--engine <name>      - Storage engine: sqlite, json, memory
//	--profile <name>     - Progress profile
//	--seed <value>       - RNG seed for reproducible quizzes
//	--difficulty <name>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagEngine     string
	flagProfile    string
	flagSeed       int64
	flagCatalog    string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruithunt",
	Short: "Fruit Hunt - Collect fruits by answering quizzes",
	Long: `Fruit Hunt is a terminal adventure for young explorers. Walk through
four regions, answer a quiz about each fruit you find, and collect all fifty.

Available commands:
  play       - Play in this terminal
  serve      - Start SSH server for remote play
  regions    - List regions and their fruits
  progress   - Show collection progress
  reset      - Forget every collected fruit
  name       - Set the explorer's name
  character  - Choose the explorer character
  settings   - Show or change settings

Examples:
  fruithunt play
  fruithunt play --difficulty easy
  fruithunt serve --ssh :2323
  fruithunt progress --profile maya`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.StringVar(&flagDBPath, "db", "", "Path to progress storage (overrides config)")
	flags.StringVar(&flagEngine, "engine", "", "Storage engine: sqlite, json, memory (overrides config)")
	flags.StringVar(&flagProfile, "profile", "", "Progress profile (overrides config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed for wrong-answer elimination (0 = random)")
	flags.StringVar(&flagCatalog, "catalog", "", "Path to a custom fruit catalog YAML")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(characterCmd)
	rootCmd.AddCommand(settingsCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
