// Package display turns captured snapshot data into ordered label/value rows
// for the page the user has selected. All functions here are pure: the
// snapshot was taken at startup and nothing in this package performs I/O.
package display

import (
	"fmt"
	"strings"

	"github.com/mscrnt/examine/pkg/snapshot"
)

// Row is one label/value pair shown in the UI.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Page identifies the information category selected in the navigation panel.
type Page int

const (
	PageOverview Page = iota
	PageDistribution
	PageMotherboard
	PageProcessor
	PagePCIDevices
	PageUSBDevices
)

// Pages returns all pages in navigation order.
func Pages() []Page {
	return []Page{
		PageOverview,
		PageDistribution,
		PageMotherboard,
		PageProcessor,
		PagePCIDevices,
		PageUSBDevices,
	}
}

// Title returns the page title shown in navigation and the window title.
func (p Page) Title() string {
	switch p {
	case PageOverview:
		return "Overview"
	case PageDistribution:
		return "Distribution"
	case PageMotherboard:
		return "Motherboard"
	case PageProcessor:
		return "Processor"
	case PagePCIDevices:
		return "PCI Devices"
	case PageUSBDevices:
		return "USB Devices"
	}
	return "Unknown"
}

// Key returns the stable identifier used in the config file.
func (p Page) Key() string {
	switch p {
	case PageOverview:
		return "overview"
	case PageDistribution:
		return "distribution"
	case PageMotherboard:
		return "motherboard"
	case PageProcessor:
		return "processor"
	case PagePCIDevices:
		return "pci"
	case PageUSBDevices:
		return "usb"
	}
	return ""
}

// PageFromKey resolves a config identifier back to a Page; unknown keys fall
// back to the Distribution page, the application's initial state.
func PageFromKey(key string) Page {
	for _, p := range Pages() {
		if p.Key() == key {
			return p
		}
	}
	return PageDistribution
}

// ParseDescriptor splits descriptor-style output (dmidecode, lscpu) into one
// row per non-empty line at the first ":". A line without the delimiter
// aborts the parse.
func ParseDescriptor(text string) ([]Row, error) {
	return parseLines(text, ":", false)
}

// ParseDeviceList splits device-listing output (lspci, lsusb) into one row
// per non-empty line at the first ": ", with sides swapped so the device
// description becomes the label and the address the value.
func ParseDeviceList(text string) ([]Row, error) {
	return parseLines(text, ": ", true)
}

func parseLines(text, delim string, swap bool) ([]Row, error) {
	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		before, after, ok := strings.Cut(line, delim)
		if !ok {
			return nil, fmt.Errorf("line %q: delimiter %q not found", line, delim)
		}
		row := Row{Label: strings.TrimSpace(before), Value: strings.TrimSpace(after)}
		if swap {
			row.Label, row.Value = strings.TrimSpace(after), strings.TrimSpace(before)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// errorRow is the single row shown when a page's data could not be produced.
func errorRow(msg string) []Row {
	return []Row{{Label: "Error", Value: msg}}
}

// Rows produces the ordered rows for a page from the startup snapshot.
// Failures surface as a single error row on the affected page; no page can
// take the process down.
func Rows(p Page, s *snapshot.Snapshot) []Row {
	switch p {
	case PageOverview:
		return overviewRows(s)
	case PageDistribution:
		return distributionRows(s)
	case PageMotherboard:
		return toolRows(s.Baseboard, ParseDescriptor)
	case PageProcessor:
		return toolRows(s.Processor, ParseDescriptor)
	case PagePCIDevices:
		return toolRows(s.PCI, ParseDeviceList)
	case PageUSBDevices:
		return toolRows(s.USB, ParseDeviceList)
	}
	return nil
}

func toolRows(out snapshot.Output, parse func(string) ([]Row, error)) []Row {
	if out.Failed() {
		return errorRow(out.Err)
	}
	rows, err := parse(out.Text)
	if err != nil {
		return errorRow(snapshot.Placeholder(err))
	}
	return rows
}
