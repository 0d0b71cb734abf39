// Package gui implements the Examine window: a navigable panel interface
// over the diagnostic snapshot taken at startup.
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mscrnt/examine/internal/config"
	"github.com/mscrnt/examine/internal/logging"
	"github.com/mscrnt/examine/pkg/display"
	"github.com/mscrnt/examine/pkg/snapshot"
)

const appTitle = "Examine"

// ExamineGUI owns the window, the navigation state and the snapshot the
// pages render.
type ExamineGUI struct {
	app    fyne.App
	window fyne.Window

	snap    *snapshot.Snapshot
	nav     *sidebar
	cfg     config.Config
	version string

	stopConfigWatch func()
}

// New collects the startup snapshot and builds the window around it.
func New(app fyne.App, version string) *ExamineGUI {
	g := &ExamineGUI{
		app:     app,
		window:  app.NewWindow(appTitle),
		cfg:     config.Load(),
		version: version,
	}

	logging.Infof("collecting startup snapshot")
	g.snap = snapshot.Collect()

	g.setup()
	return g
}

func (g *ExamineGUI) setup() {
	g.app.Settings().SetTheme(examineTheme{})

	g.window.Resize(fyne.NewSize(1000, 700))
	g.window.CenterOnScreen()

	g.createMenu()

	g.nav = newSidebar(func(p display.Page) {
		g.window.SetTitle(fmt.Sprintf("%s — %s", appTitle, p.Title()))
	})
	g.nav.SetCollapsed(g.cfg.SidebarCollapsed)
	g.rebuildPages()
	g.window.SetContent(g.nav.Layout())

	g.nav.Select(display.PageFromKey(g.cfg.StartPage))

	g.watchConfig()

	g.window.SetCloseIntercept(func() {
		if g.stopConfigWatch != nil {
			g.stopConfigWatch()
		}
		g.window.Close()
	})
}

// rebuildPages renders every page from the current snapshot. Rendering is
// pure; switching pages afterwards performs no I/O.
func (g *ExamineGUI) rebuildPages() {
	for _, p := range display.Pages() {
		g.nav.SetContent(p, pageContent(p, display.Rows(p, g.snap)))
	}
}

func (g *ExamineGUI) createMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Refresh Snapshot", g.refreshSnapshot),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			g.app.Quit()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Sidebar", g.toggleSidebar),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", g.showAbout),
	)

	g.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// refreshSnapshot re-runs the collectors on explicit request. This is the
// only way data changes after startup.
func (g *ExamineGUI) refreshSnapshot() {
	logging.Infof("refreshing snapshot")
	g.snap = snapshot.Collect()
	g.rebuildPages()
}

func (g *ExamineGUI) toggleSidebar() {
	g.nav.SetCollapsed(!g.nav.Collapsed())

	g.cfg.SidebarCollapsed = g.nav.Collapsed()
	if err := config.Save(g.cfg); err != nil {
		logging.Warnf("config save failed: %v", err)
	}
}

// watchConfig applies settings edited outside the application while it runs.
func (g *ExamineGUI) watchConfig() {
	updates, stop, err := config.Watch()
	if err != nil {
		logging.Warnf("config watch unavailable: %v", err)
		return
	}
	g.stopConfigWatch = stop

	go func() {
		for cfg := range updates {
			logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
			fyne.Do(func() {
				g.cfg = cfg
				g.nav.SetCollapsed(cfg.SidebarCollapsed)
			})
		}
	}()
}

func (g *ExamineGUI) showAbout() {
	var popup *widget.PopUp
	about := widget.NewCard(
		"About Examine",
		"Hardware and OS inspector",
		container.NewVBox(
			widget.NewLabel(fmt.Sprintf("Version: %s\n\n"+
				"Examine displays the host's OS release metadata and the\n"+
				"motherboard, processor, PCI and USB device inventory\n"+
				"reported by the system's diagnostic tools.", g.version)),
			widget.NewButton("Close", func() {
				popup.Hide()
			}),
		),
	)

	popup = widget.NewModalPopUp(about, g.window.Canvas())
	about.Resize(fyne.NewSize(420, 280))
	popup.Show()
}

// ShowAndRun displays the window and enters the event loop.
func (g *ExamineGUI) ShowAndRun() {
	g.window.ShowAndRun()
}
