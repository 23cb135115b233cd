package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/arshubham/srtnr/internal/config"
	"github.com/arshubham/srtnr/internal/logging"
	"github.com/arshubham/srtnr/internal/provider"
	"github.com/arshubham/srtnr/internal/shortener"
	"github.com/arshubham/srtnr/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.github.arshubham.srtnr"
	AppName = "Srtnr"

	WindowWidth  = 700
	WindowHeight = 500
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "srtnr: %v\n", err)
		os.Exit(1)
	}

	logger, sync := logging.Must(logging.Config{Level: env.LogLevel, Development: env.LogDevelopment})
	defer sync()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	myWindow.SetFixedSize(true)
	myWindow.CenterOnScreen()

	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
		myWindow.SetIcon(icon)
	} else {
		logger.Debug("app icon not found", zap.Error(err))
	}

	// Initialize services
	registry := provider.NewRegistry(env.Credentials())
	for _, p := range registry.List() {
		if p.Auth.Missing() {
			logger.Warn("provider has no credential configured", zap.String("provider", p.Name), zap.Stringer("auth", p.Auth.Kind))
		}
	}
	shortenerSvc := shortener.NewService(shortener.NewHTTPClient(env.HTTPTimeout), logger)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, registry, shortenerSvc, logger)

	// Show and run
	myWindow.ShowAndRun()
}
