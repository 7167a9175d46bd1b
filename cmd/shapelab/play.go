package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shapelab/internal/platform/tui"
	"shapelab/internal/storage"
)

var (
	flagPlayScene  string
	flagPlayFromDB string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive sandbox",
	Long: `Open the sandbox on the loaded scene.

Controls:
  Tab/Shift+Tab    - Select next/previous body
  Arrows/hjkl      - Move the selected body
  r/R              - Rotate the selected body
  Space            - Toggle spin mode
  ?                - Toggle help
  q/Esc/Ctrl+C     - Quit

Colliding bodies are highlighted. A summary of the session is recorded in
the history database on exit.

Examples:
  shapelab play
  shapelab play --scene ./my-scene.yaml
  shapelab play --from-db demo`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayScene, "scene", "", "Path to a scene YAML file")
	playCmd.Flags().StringVar(&flagPlayFromDB, "from-db", "", "Name of a saved scene to load from the database")
}

func runPlay(cmd *cobra.Command, args []string) {
	sc, err := resolveScene(flagPlayScene, flagPlayFromDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early; Bubble Tea keeps it updated afterwards.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Width:  width,
		Height: height,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - the sandbox still works
		store = nil
	}

	runErr := tui.Run(sc, store, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running sandbox: %v\n", runErr)
		os.Exit(1)
	}
}
