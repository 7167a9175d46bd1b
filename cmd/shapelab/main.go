// shapelab is a 2D shape and collision sandbox for the terminal.
//
// Usage:
//
//	shapelab check             - Report colliding pairs in a scene
//	shapelab play              - Open the interactive sandbox
//	shapelab serve             - Serve the sandbox over SSH
//	shapelab scenes <cmd>      - Manage saved scenes
//	shapelab history           - Show recent collision-check runs
//
// Global flags:
//
//	--db <path>    - Set database path (default: ~/.shapelab/shapelab.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shapelab/internal/config"
	"shapelab/internal/scene"
	"shapelab/internal/storage"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapelab",
	Short: "Shapelab - 2D collision sandbox in your terminal",
	Long: `Shapelab is a terminal playground for 2D collision testing: circles,
rectangles and convex polygons with exact intersection tests, an
axis-aligned fast path, and SAT for rotated rectangles.

Available commands:
  check    - Load a scene and report colliding pairs
  play     - Interactive sandbox (move and rotate bodies live)
  serve    - Serve the sandbox over SSH
  scenes   - Save, list, show and delete scenes
  history  - Recent collision-check runs

Examples:
  shapelab check --scene ./my-scene.yaml
  shapelab play
  shapelab serve --ssh :2222
  shapelab scenes save demo --scene ./my-scene.yaml
  shapelab history`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shapelab/shapelab.db", "Path to the shapelab database")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(historyCmd)
}

// resolveScene loads a scene from a YAML path, from the database, or from
// the default search path when neither is given.
func resolveScene(scenePath, fromDB string) (*scene.Scene, error) {
	if fromDB != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, fmt.Errorf("cannot open database: %w", err)
		}
		defer store.Close()

		entry, err := store.Scene(fromDB)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, fmt.Errorf("no saved scene named %q (try 'shapelab scenes list')", fromDB)
		}
		cfg, err := config.Parse([]byte(entry.YAML))
		if err != nil {
			return nil, err
		}
		return cfg.Build()
	}

	cfg, err := config.Load(scenePath)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}
