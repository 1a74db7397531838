// Package app wires the editor, the multi-cursor dispatcher, the key hooks
// and the terminal into a runnable application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/multicursor/internal/clipboard"
	"github.com/dshills/multicursor/internal/config"
	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/syntax"
	"github.com/dshills/multicursor/internal/input/keymap"
	"github.com/dshills/multicursor/internal/multicursor"
	"github.com/dshills/multicursor/internal/plugin/lua"
	"github.com/dshills/multicursor/internal/renderer"
	"github.com/dshills/multicursor/internal/renderer/backend"
	rcursor "github.com/dshills/multicursor/internal/renderer/cursor"
	"github.com/dshills/multicursor/internal/renderer/selection"
)

// CmdSave is the command that writes the document.
const CmdSave = "save"

// Options configures the application.
type Options struct {
	// ConfigPath is the path to a TOML or YAML configuration file.
	ConfigPath string

	// EnvFiles are .env files with MULTICURSOR_* overrides.
	EnvFiles []string

	// File is the file to edit. Empty opens a scratch buffer.
	File string

	// LogLevel overrides the configured log level.
	LogLevel string

	// LogOutput overrides the configured log file.
	LogOutput io.Writer

	// HookScripts are Lua key hooks loaded after the configured ones.
	HookScripts []string

	// Clipboard replaces the system clipboard.
	Clipboard clipboard.Clipboard

	// Watch reloads the configuration file when it changes.
	Watch bool
}

// Application is the central coordinator for all components.
type Application struct {
	opts    Options
	cfg     *config.Config
	logger  *Logger
	logFile *os.File

	doc         *Document
	ed          *editor.Editor
	dispatcher  *multicursor.Dispatcher
	clip        *multicursor.Clipboard
	commands    *multicursor.Commands
	keys        *keymap.Keymap
	decorations *selection.Decorations
	blinker     *rcursor.Blinker
	hooks       []*lua.Hook
	watcher     *config.Watcher

	backend    backend.Backend
	renderer   *renderer.Renderer
	lastButton backend.MouseButton

	reloads   chan *config.Config
	running   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
}

// New creates an application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		reloads: make(chan *config.Config, 1),
		done:    make(chan struct{}),
	}
	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.opts.ConfigPath, app.opts.EnvFiles...)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	// 2. Logging
	if err := app.setupLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}

	// 3. Document and editor
	doc, err := OpenDocument(app.opts.File, cfg.LineEnding(), cfg.Editor.TabWidth)
	if err != nil {
		return &InitError{Component: "document", Err: err}
	}
	app.doc = doc

	analyzer := syntax.ForFile(doc.Path)
	if cfg.Editor.Language != "" {
		analyzer = syntax.NewAnalyzer(cfg.Editor.Language)
	}
	app.ed = editor.New(doc.Buffer,
		editor.WithOptions(cfg.EditorOptions()),
		editor.WithSyntax(analyzer),
		editor.WithLogger(app.logger.WithComponent("editor")))

	// 4. Multi-cursor layer
	app.decorations = selection.NewDecorations(selection.DefaultConfig())
	app.ed.Cursors().SetObserver(app.decorations)
	app.ed.Cursors().Enable(cfg.Multicursor.Enabled)

	board := app.opts.Clipboard
	if board == nil {
		board = clipboard.New()
	}
	app.clip = multicursor.NewClipboard(app.ed, board)
	app.dispatcher = multicursor.NewDispatcher(app.ed)
	app.commands = multicursor.NewCommands(app.ed, app.clip)
	app.commands.Register(CmdSave, app.save)
	app.setKeymap(cfg.Keys)

	// 5. Key hooks
	scripts := append(append([]string(nil), cfg.Hooks.Scripts...), app.opts.HookScripts...)
	for _, script := range scripts {
		app.loadHook(script)
	}

	// 6. Caret blinking
	app.blinker = rcursor.NewBlinker(time.Duration(cfg.Cursor.BlinkIntervalMS) * time.Millisecond)

	// 7. Config watcher
	if app.opts.Watch && app.opts.ConfigPath != "" {
		w, err := config.NewWatcher(app.opts.ConfigPath,
			config.WithEnvFiles(app.opts.EnvFiles...),
			config.WithWatcherLogger(app.logger.WithComponent("config")))
		if err != nil {
			app.logger.Warn("config watcher disabled: %v", err)
		} else {
			w.OnReload(app.queueReload)
			app.watcher = w
		}
	}

	app.logger.Info("editing %s (%s, %d lines, multi-cursor %v)",
		doc.Name, app.ed.Syntax().Language(), doc.Buffer.LineCount(), cfg.Multicursor.Enabled)
	return nil
}

func (app *Application) setupLogger() error {
	level := app.cfg.Logging.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}

	out := app.opts.LogOutput
	if out == nil && app.cfg.Logging.File != "" {
		f, err := os.OpenFile(app.cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	}
	if out == nil {
		// Stderr belongs to the terminal screen.
		out = io.Discard
	}

	lc := DefaultLoggerConfig()
	lc.Level = ParseLogLevel(level)
	lc.Output = out
	app.logger = NewLogger(lc)
	return nil
}

func (app *Application) loadHook(script string) {
	name := "lua:" + filepath.Base(script)
	h, err := lua.LoadHook(script, nil,
		lua.WithName(name),
		lua.WithLogger(app.logger.WithComponent("lua")))
	if err != nil {
		app.logger.Warn("hook %s not loaded: %v", script, err)
		return
	}
	app.hooks = append(app.hooks, h)
	app.dispatcher.AddHook(h)
	app.logger.Debug("hook %s loaded", name)
}

func (app *Application) setKeymap(overrides map[string]string) {
	km, err := buildKeymap(overrides)
	if err != nil {
		app.logger.Warn("key bindings: %v", err)
	}
	if km != nil {
		app.keys = km
	}
}

func (app *Application) queueReload(cfg *config.Config) {
	select {
	case app.reloads <- cfg:
	default:
		// A newer reload replaces the pending one.
		select {
		case <-app.reloads:
		default:
		}
		app.reloads <- cfg
	}
}

// applyConfig applies a reloaded configuration to the running editor.
func (app *Application) applyConfig(cfg *config.Config) {
	app.cfg = cfg
	app.ed.SetOptions(cfg.EditorOptions())
	app.ed.Buffer().SetLineEnding(cfg.LineEnding())
	app.ed.Cursors().Enable(cfg.Multicursor.Enabled)
	if d := time.Duration(cfg.Cursor.BlinkIntervalMS) * time.Millisecond; d != app.blinker.Interval() {
		app.blinker.SetInterval(d)
		app.logger.Debug("blink interval %s", d)
	}
	app.setKeymap(cfg.Keys)
	if app.opts.LogLevel == "" {
		app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	}
	if app.renderer != nil {
		ropts := renderer.DefaultOptions()
		ropts.CaretWidth = cfg.Cursor.Width
		app.renderer.SetOptions(ropts)
	}
	app.logger.Info("configuration reloaded (multi-cursor %v)", cfg.Multicursor.Enabled)
}

func (app *Application) save() {
	if err := app.doc.Save(); err != nil {
		app.logger.Warn("%v", err)
		return
	}
	app.logger.Info("saved %s", app.doc.Path)
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config { return app.cfg }

// Logger returns the application logger.
func (app *Application) Logger() *Logger { return app.logger }

// Document returns the document being edited.
func (app *Application) Document() *Document { return app.doc }

// Editor returns the editor.
func (app *Application) Editor() *editor.Editor { return app.ed }

// Dispatcher returns the key dispatcher.
func (app *Application) Dispatcher() *multicursor.Dispatcher { return app.dispatcher }

// Commands returns the command registry.
func (app *Application) Commands() *multicursor.Commands { return app.commands }

// Keymap returns the active key bindings.
func (app *Application) Keymap() *keymap.Keymap { return app.keys }

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// attach creates the renderer for the backend.
func (app *Application) attach() {
	ropts := renderer.DefaultOptions()
	ropts.CaretWidth = app.cfg.Cursor.Width
	app.renderer = renderer.New(app.backend, app.ed, app.decorations, app.blinker, ropts)
}

// Run starts the event loop and blocks until quit or Shutdown. An
// application runs once.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	defer app.Shutdown()

	app.attach()
	app.blinker.Start(time.Now())
	app.renderer.Render()

	err := app.eventLoop()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Shutdown stops a running event loop.
func (app *Application) Shutdown() {
	app.closeOnce.Do(func() { close(app.done) })
}

// Close releases hooks, the config watcher and the log file.
func (app *Application) Close() error {
	app.Shutdown()

	var errs []error
	for _, h := range app.hooks {
		if err := h.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close hook %s: %w", h.Name(), err))
		}
	}
	app.hooks = nil
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close watcher: %w", err))
		}
		app.watcher = nil
	}
	if app.logFile != nil {
		if err := app.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log: %w", err))
		}
		app.logFile = nil
	}
	return errors.Join(errs...)
}
