package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	xtimeApp "xtime/internal/app"
	"xtime/internal/autostart"
	"xtime/internal/config"
	"xtime/internal/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed build/appicon.png
var icon []byte

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "xtime",
		Short:         "Jira worklog tracker living in the system tray",
		Version:       xtimeApp.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	cmd.Flags().BoolVar(&cfg.Silent, "silent", cfg.Silent, "start hidden in the tray (used by autostart)")
	cmd.Flags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding xtime.db")
	cmd.Flags().StringVar(&cfg.Locale, "locale", cfg.Locale, "tray menu language (tr, en)")
	cmd.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	return cmd
}

func run(cfg config.Config) error {
	log := logging.New(os.Stderr, cfg.Debug)
	app := xtimeApp.New(cfg, icon, log)

	level := logger.INFO
	if cfg.Debug {
		level = logger.DEBUG
	}

	// macOS needs an Edit menu for Cmd+C/V/X/A to reach the WebView
	appMenu := menu.NewMenu()
	appMenu.Append(menu.EditMenu())

	return wails.Run(&options.App{
		Title:     "XTime",
		Width:     1280,
		Height:    800,
		MinWidth:  800,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 15, G: 15, B: 20, A: 1},
		Menu:             appMenu,
		StartHidden:      cfg.Silent,
		Logger:           logging.NewWailsLogger(log),
		LogLevel:         level,
		OnStartup:        app.Startup,
		OnShutdown:       app.Shutdown,
		OnBeforeClose:    app.BeforeClose,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: "com.xtime.desktop",
			OnSecondInstanceLaunch: func(data options.SecondInstanceData) {
				for _, a := range data.Args {
					if a == autostart.SilentFlag {
						return
					}
				}
				app.ShowWindow()
			},
		},
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			TitleBar: mac.TitleBarHiddenInset(),
			About: &mac.AboutInfo{
				Title:   "XTime",
				Message: "Jira worklog tracker",
				Icon:    icon,
			},
		},
	})
}
