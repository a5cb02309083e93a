package app

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"xtime/internal/autostart"
	"xtime/internal/config"
	"xtime/internal/jira"
	"xtime/internal/notify"
	"xtime/internal/secret"
	"xtime/internal/service"
	"xtime/internal/shell"
	"xtime/internal/storage"
	"xtime/internal/tray"
)

// Version is set at build time via ldflags.
var Version = "0.1.0-dev"

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx  context.Context
	cfg  config.Config
	log  zerolog.Logger
	icon []byte

	db       *storage.DB
	secrets  secret.SecretStore
	notifier notify.Notifier
	emitter  service.EventEmitter
	launcher *autostart.Manager

	settings *service.SettingsService
	accounts *service.AccountService
	worklogs *service.WorklogService
	reminder *service.ReminderService

	// The shell loop owns the window; everything else posts to it.
	shell      *shell.Controller
	stopShell  context.CancelFunc
	tray       *tray.Tray
	windowSize func() (int, int)
}

// New creates a new App. icon is shown in the tray.
func New(cfg config.Config, icon []byte, log zerolog.Logger) *App {
	a := &App{
		cfg:      cfg,
		log:      log,
		icon:     icon,
		secrets:  secret.NewKeychainStore(),
		notifier: notify.NewDispatcher(log),
		emitter:  wailsEmitter{},
	}
	if exe, err := os.Executable(); err == nil {
		a.launcher = autostart.New("xtime", exe, autostart.SilentFlag)
	}
	return a
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	db, err := storage.New(a.cfg.DBPath())
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to open database: %v", err)
		return
	}

	initial := shell.Visible
	if a.cfg.Silent {
		initial = shell.Hidden
	}
	a.wire(ctx, db, jira.NewClient(a.log), newWailsWindow(ctx), a.quit, initial)
	a.windowSize = func() (int, int) { return wailsRuntime.WindowGetSize(ctx) }

	ws := a.settings.LoadWindowSize()
	wailsRuntime.WindowSetSize(ctx, ws.Width, ws.Height)

	a.tray = tray.New(a.icon, notify.AppName, a.cfg.Locale, a.shell, a.log)
	a.tray.Start()

	if err := a.reminder.Start(ctx); err != nil {
		a.log.Error().Err(err).Msg("failed to start reminder")
	}
	a.log.Info().Str("data", a.cfg.DataDir).Bool("silent", a.cfg.Silent).Msg("started")
}

// wire builds the services and starts the shell loop.
func (a *App) wire(ctx context.Context, db *storage.DB, jc service.WorklogClient, win shell.Window, exit shell.ExitFunc, initial shell.State) {
	a.ctx = ctx
	a.db = db
	a.settings = service.NewSettingsService(storage.NewSettingsStore(db), a.emitter)
	a.accounts = service.NewAccountService(storage.NewAccountStore(db), a.secrets, a.settings)
	a.worklogs = service.NewWorklogService(a.accounts, jc, a.notifier, a.emitter, a.log)
	a.reminder = service.NewReminderService(a.worklogs, a.settings, a.notifier, a.log)

	a.shell = shell.NewController(win, initial, exit, a.log)
	shellCtx, cancel := context.WithCancel(ctx)
	a.stopShell = cancel
	go func() {
		if err := a.shell.Run(shellCtx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Error().Err(err).Msg("shell loop stopped")
		}
	}()
}

// BeforeClose is the window close-request hook. Returning true keeps the
// window alive; the shell hides it instead.
func (a *App) BeforeClose(ctx context.Context) bool {
	if a.shell == nil {
		return false
	}
	if !a.shell.Quitting() {
		a.saveWindowSize()
	}
	return a.shell.BeforeClose(ctx)
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	if a.tray != nil {
		a.tray.Stop()
	}
	if a.reminder != nil {
		stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		a.reminder.Stop(stopCtx)
		cancel()
	}
	if a.stopShell != nil {
		a.stopShell()
	}
	if a.db != nil {
		a.db.Close()
	}
}

// quit is the shell's exit path. wails.Run returns once the runtime has
// shut down and main exits with status 0.
func (a *App) quit(code int) {
	a.saveWindowSize()
	a.log.Info().Int("code", code).Msg("quitting")
	wailsRuntime.Quit(a.ctx)
}

func (a *App) saveWindowSize() {
	if a.windowSize == nil || a.settings == nil {
		return
	}
	w, h := a.windowSize()
	if err := a.settings.SaveWindowSize(w, h); err != nil {
		a.log.Warn().Err(err).Msg("failed to save window size")
	}
}

// ShowWindow brings the main window back, as the tray's Show item does.
func (a *App) ShowWindow() {
	if a.shell != nil {
		a.shell.Show()
	}
}

// GetVersion returns the application version.
func (a *App) GetVersion() string {
	return Version
}
