package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"
	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/app"
	"github.com/user-none/eblitmenu/engine/demo"
	"github.com/user-none/eblitmenu/i18n"
	"github.com/user-none/eblitmenu/storage"
)

const (
	appName = "eblitmenu"
	version = "0.1.0"
)

var credits = []string{
	"Menus built with ebitenui",
	"Rendering by Ebitengine",
}

type flags struct {
	configDir string
	language  string
	target    string
	noLaunch  bool
	noQuit    bool
	width     int
	height    int
}

func newRootCommand() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "eblitmenu: in-game menus for ebiten games",
		Long:  "eblitmenu runs a small demo game with the global in-game menu, options dialog and save/load choosers.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&f.configDir, "config-dir", "", "directory for config.json and saves (default: user config dir)")
	rootCmd.Flags().StringVar(&f.language, "language", "", "GUI language, e.g. de or en-US")
	rootCmd.Flags().StringVar(&f.target, "target", demo.Name, "game target started from the launcher")
	rootCmd.Flags().BoolVar(&f.noLaunch, "skip-launcher", false, "start the game without showing the launcher")
	rootCmd.Flags().BoolVar(&f.noQuit, "no-quit", false, "hide quit actions as on platforms that cannot quit")
	rootCmd.Flags().IntVar(&f.width, "width", demo.Width*2, "window width")
	rootCmd.Flags().IntVar(&f.height, "height", demo.Height*2, "window height")
	return rootCmd
}

func run(f *flags) error {
	storage.SetBaseDir(f.configDir)
	if err := storage.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	if err := storage.CreateConfigIfMissing(); err != nil {
		log.Printf("Warning: failed to create config: %v", err)
	}
	i18n.SetLanguageName(f.language)

	cfg, err := storage.OpenConfigManager()
	configLoadFailed := err != nil
	if configLoadFailed {
		path, _ := storage.GetConfigPath()
		log.Printf("Warning: failed to load %s: %v", path, err)
		dialog.Message("The file %q is invalid or corrupted.\n\nSettings will not be saved until it is fixed or removed.", path).
			Title(appName).
			Error()
	}

	store, err := achievements.OpenStore(appName)
	if err != nil {
		log.Printf("Warning: achievements will not be saved: %v", err)
	}

	a := app.New(app.Options{
		AppName:          appName,
		Version:          version,
		Credits:          credits,
		Target:           f.target,
		Config:           cfg,
		ConfigLoadFailed: configLoadFailed,
		Store:            store,
		StartInGame:      f.noLaunch,
		NoQuit:           f.noQuit,
	})

	ebiten.SetWindowTitle(appName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(f.width, f.height)

	if err := ebiten.RunGame(a); err != nil {
		return err
	}
	a.Shutdown()
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
