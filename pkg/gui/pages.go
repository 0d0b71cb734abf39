package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mscrnt/examine/pkg/display"
)

// pageContent renders a page's rows as a scrollable two-column list.
func pageContent(p display.Page, rows []display.Row) fyne.CanvasObject {
	header := widget.NewLabelWithStyle(p.Title(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	body := container.NewVBox()
	if len(rows) == 0 {
		empty := widget.NewLabel("No data available")
		empty.Importance = widget.LowImportance
		body.Add(empty)
	}
	for _, row := range rows {
		body.Add(infoRow(row))
		body.Add(widget.NewSeparator())
	}

	scroll := container.NewVScroll(container.NewPadded(body))
	return container.NewBorder(container.NewPadded(header), nil, nil, nil, scroll)
}

// infoRow renders one label/value pair. Error rows get error styling.
func infoRow(row display.Row) fyne.CanvasObject {
	label := widget.NewLabelWithStyle(row.Label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	value := widget.NewLabelWithStyle(row.Value, fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true})
	value.Wrapping = fyne.TextWrapWord

	if row.Label == "Error" {
		label.Importance = widget.DangerImportance
		value.Importance = widget.DangerImportance
	}

	return container.NewBorder(nil, nil, label, nil, value)
}
