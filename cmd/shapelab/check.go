package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"shapelab/internal/storage"
)

var (
	flagCheckScene  string
	flagCheckFromDB string
	flagCheckQuiet  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report colliding pairs in a scene",
	Long: `Load a scene, test every pair of bodies and report the intersecting
ones. The run is recorded in the history database.

Examples:
  shapelab check
  shapelab check --scene ./my-scene.yaml
  shapelab check --from-db demo`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagCheckScene, "scene", "", "Path to a scene YAML file")
	checkCmd.Flags().StringVar(&flagCheckFromDB, "from-db", "", "Name of a saved scene to load from the database")
	checkCmd.Flags().BoolVarP(&flagCheckQuiet, "quiet", "q", false, "Only print colliding pairs")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "shapelab-check",
	})
	if flagCheckQuiet {
		logger.SetLevel(log.ErrorLevel)
	}

	sc, err := resolveScene(flagCheckScene, flagCheckFromDB)
	if err != nil {
		return err
	}
	logger.Info("scene loaded", "name", sc.Name, "bodies", len(sc.Bodies), "pairs", sc.PairCount())

	start := time.Now()
	pairs := sc.CollidingPairs()
	elapsed := time.Since(start)

	logger.Info("check complete", "hits", len(pairs), "elapsed", elapsed)

	for _, p := range pairs {
		fmt.Println(p)
	}
	if len(pairs) == 0 && !flagCheckQuiet {
		fmt.Println("no collisions")
	}

	// Record the run, best effort.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, run not recorded", "error", err)
		return nil
	}
	defer store.Close()
	if _, err := store.RecordRun(sc.Name, sc.PairCount(), len(pairs), elapsed); err != nil {
		logger.Warn("could not record run", "error", err)
	}
	return nil
}
