package main

import (
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"github.com/mscrnt/examine/internal/config"
	"github.com/mscrnt/examine/internal/logging"
	"github.com/mscrnt/examine/internal/version"
	"github.com/mscrnt/examine/pkg/gui"
)

// Build-time variables set via ldflags
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildTime    = "unknown"
)

func main() {
	// Fix locale issue in WSL/minimal environments
	// Set a minimal but valid locale that Fyne will accept
	lang := os.Getenv("LANG")
	if lang == "" || lang == "C" {
		// Use a valid locale format
		os.Setenv("LANG", "en_US.UTF-8")
		os.Setenv("LC_ALL", "en_US.UTF-8")
	}

	cfg := config.Load()
	logging.Init(logging.DefaultPath(), logging.ParseLevel(cfg.LogLevel))

	// Create the application
	myApp := app.NewWithID("io.github.mscrnt.examine")
	myApp.SetIcon(theme.ComputerIcon())

	// Create and run the GUI
	examineGUI := gui.New(myApp, version.GetVersion(buildVersion, buildCommit, buildTime))
	examineGUI.ShowAndRun()
}
