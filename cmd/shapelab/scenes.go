package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shapelab/internal/config"
	"shapelab/internal/storage"
)

var flagSceneSavePath string

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "Manage saved scenes",
	Long: `Save, list, show and delete named scenes in the database.

Examples:
  shapelab scenes list
  shapelab scenes save demo --scene ./my-scene.yaml
  shapelab scenes save default              # saves the built-in scene
  shapelab scenes show demo
  shapelab scenes rm demo`,
}

var scenesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenes",
	RunE:  runScenesList,
}

var scenesSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a scene under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenesSave,
}

var scenesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved scene's YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenesShow,
}

var scenesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved scene",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenesRm,
}

func init() {
	scenesSaveCmd.Flags().StringVar(&flagSceneSavePath, "scene", "", "Path to the scene YAML file (default: built-in scene)")

	scenesCmd.AddCommand(scenesListCmd)
	scenesCmd.AddCommand(scenesSaveCmd)
	scenesCmd.AddCommand(scenesShowCmd)
	scenesCmd.AddCommand(scenesRmCmd)
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	return store, nil
}

func runScenesList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	scenes, err := store.ListScenes()
	if err != nil {
		return err
	}

	if len(scenes) == 0 {
		fmt.Println("No saved scenes.")
		fmt.Println()
		fmt.Println("Run 'shapelab scenes save <name>' to save one.")
		return nil
	}

	fmt.Println("Saved scenes:")
	fmt.Println()
	for _, s := range scenes {
		fmt.Printf("  %-20s  %s\n", s.Name, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'shapelab play --from-db <name>' to open one.")
	return nil
}

func runScenesSave(cmd *cobra.Command, args []string) error {
	name := args[0]

	var doc []byte
	if flagSceneSavePath != "" {
		data, err := os.ReadFile(flagSceneSavePath)
		if err != nil {
			return fmt.Errorf("cannot read scene file: %w", err)
		}
		doc = data
	} else {
		doc = config.DefaultSceneYAML()
	}

	// Validate before saving: a scene that cannot build is not worth keeping.
	cfg, err := config.Parse(doc)
	if err != nil {
		return err
	}
	if _, err := cfg.Build(); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveScene(name, doc); err != nil {
		return err
	}
	fmt.Printf("Saved scene %q (%d bodies).\n", name, len(cfg.Bodies))
	return nil
}

func runScenesShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Scene(args[0])
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no saved scene named %q", args[0])
	}
	fmt.Print(entry.YAML)
	return nil
}

func runScenesRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteScene(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted scene %q.\n", args[0])
	return nil
}
