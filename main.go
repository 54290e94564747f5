// chroma is a side-scrolling platformer about mixing colors. Items tint
// the background, and colored boxes turn solid or passable depending on
// the tint.
//
// Usage:
//
//	chroma                   - Play from the configured start stage
//	chroma --stage 2         - Start at stage 2
//	chroma --levels my.json  - Play a custom level table
//	chroma stages            - List and validate the level table
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/levels"
	"github.com/milk9111/chroma/prefabs"
	"github.com/milk9111/chroma/system"
	"github.com/spf13/cobra"
)

var (
	debugMode  bool
	startStage int
	configPath string
	levelsPath string
	scale      float64
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "A platformer about mixing colors",
	Long: `chroma is a side-scrolling platformer. Collect colored items to tint the
background; boxes that match the tint let you walk through them.`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug overlay, prefab hot reload and position copy (C)")
	rootCmd.PersistentFlags().IntVar(&startStage, "stage", 0, "stage index to start at (overrides game.yaml)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a custom game.yaml")
	rootCmd.PersistentFlags().StringVar(&levelsPath, "levels", "", "path to a level table JSON file (default: embedded)")
	rootCmd.PersistentFlags().Float64Var(&scale, "scale", 0, "window scale (default: game.yaml window_scale)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(stagesCmd)
}

func newLogger() (*log.Logger, error) {
	level := logLevel
	if debugMode {
		level = "debug"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chroma",
		Level:           lvl,
	})
	return logger, nil
}

func loadTable() (*levels.Table, error) {
	if levelsPath != "" {
		return levels.LoadFile(levelsPath)
	}
	return levels.Load()
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	table, err := loadTable()
	if err != nil {
		return err
	}
	specs, err := prefabs.LoadAll(configPath)
	if err != nil {
		return err
	}

	opts := []system.Option{system.WithLogger(logger)}
	if cmd.Flags().Changed("stage") {
		opts = append(opts, system.WithStartStage(startStage))
	}

	app, err := NewApp(table, specs, AppOptions{
		Debug:      debugMode,
		ConfigPath: configPath,
		Logger:     logger,
	}, opts...)
	if err != nil {
		return err
	}
	defer app.Close()

	s := scale
	if s <= 0 {
		s = specs.Game.WindowScale
	}
	if s <= 0 {
		s = 1
	}
	ebiten.SetWindowSize(int(common.ScreenWidth*s), int(common.ScreenHeight*s))
	ebiten.SetWindowTitle("chroma")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "stages", table.Len(), "debug", debugMode)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
