package app

import (
	"context"

	"rgb-slicer/internal/config"
	"rgb-slicer/internal/logger"
	"rgb-slicer/internal/shutdown"
)

// Lifecycle tears the application down in reverse construction order and
// persists the config last.
type Lifecycle struct {
	manager    *shutdown.Manager
	cfg        *config.Config
	configPath string
	logger     logger.Logger
}

func NewLifecycle(cfg *config.Config, configPath string, log logger.Logger) *Lifecycle {
	lifecycle := &Lifecycle{
		manager:    shutdown.NewManager(log),
		cfg:        cfg,
		configPath: configPath,
		logger:     log,
	}
	lifecycle.manager.Register(shutdown.Func(lifecycle.saveConfig))
	return lifecycle
}

func (l *Lifecycle) Register(component shutdown.Shutdownable) {
	l.manager.Register(component)
}

// Context is cancelled once shutdown begins.
func (l *Lifecycle) Context() context.Context {
	return l.manager.Context()
}

func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

func (l *Lifecycle) saveConfig() {
	if l.configPath == "" {
		return
	}

	if err := config.Save(l.cfg, l.configPath); err != nil {
		l.logger.Error("Lifecycle", err, map[string]interface{}{
			"path": l.configPath,
		})
		return
	}

	l.logger.Debug("Lifecycle", "config saved", map[string]interface{}{
		"path": l.configPath,
	})
}
