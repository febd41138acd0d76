package app

import (
	"rgb-slicer/internal/config"
	"rgb-slicer/internal/debug/timing"
	"rgb-slicer/internal/gui"
	"rgb-slicer/internal/logger"
	"rgb-slicer/internal/pipeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "RGB Slicer"
	AppID      = "com.imageprocessing.rgbslicer"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	guiManager  *gui.Manager
	coordinator *pipeline.Coordinator
	handlers    *Handlers
	lifecycle   *Lifecycle
	logger      logger.Logger
}

func NewApplication(cfg *config.Config, configPath string, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	window.Resize(fyne.NewSize(cfg.UI.WindowWidth, cfg.UI.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   AppVersion,
		"axis":      cfg.Render.Axis.String(),
		"threshold": cfg.Render.Threshold,
		"workers":   cfg.Render.Workers,
	})

	lifecycle := NewLifecycle(cfg, configPath, log)
	tracker := timing.NewTracker(log)
	coordinator := pipeline.NewCoordinator(log, tracker, cfg.Render.Workers)
	guiManager := gui.NewManager(window, log)
	handlers := NewHandlers(lifecycle.Context(), coordinator, guiManager, cfg, log)

	lifecycle.Register(guiManager)
	lifecycle.Register(coordinator)
	lifecycle.Register(handlers)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		guiManager:  guiManager,
		coordinator: coordinator,
		handlers:    handlers,
		lifecycle:   lifecycle,
		logger:      log,
	}

	application.setupHandlers(cfg)

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers(cfg *config.Config) {
	a.guiManager.SetImageLoadHandler(a.handlers.HandleImageLoad)
	a.guiManager.SetSliceChangeHandler(a.handlers.HandleSliceChange)
	a.guiManager.SetAxisChangeHandler(a.handlers.HandleAxisChange)
	a.guiManager.SetThresholdChangeHandler(a.handlers.HandleThresholdChange)
	a.guiManager.SetImageHoverHandler(a.handlers.HandleImageHover)
	a.guiManager.SetSliceHoverHandler(a.handlers.HandleSliceHover)

	a.guiManager.InitControls(cfg.Render.Axis, cfg.Render.Threshold)
}

// Run shows the window and blocks until it closes. A non-empty initialPath
// is loaded right away.
func (a *Application) Run(initialPath string) error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	if initialPath != "" {
		a.handlers.LoadPath(initialPath)
	}

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}
