package display

import (
	"strings"
	"testing"

	"github.com/mscrnt/examine/pkg/osrelease"
	"github.com/mscrnt/examine/pkg/snapshot"
)

func TestParseDescriptor(t *testing.T) {
	text := "Architecture: x86_64\nCPU(s): 8\n"
	rows, err := ParseDescriptor(text)
	if err != nil {
		t.Fatalf("ParseDescriptor() error = %v", err)
	}
	want := []Row{
		{Label: "Architecture", Value: "x86_64"},
		{Label: "CPU(s)", Value: "8"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestParseDescriptorRowCountMatchesNonEmptyLines(t *testing.T) {
	text := "a: 1\n\nb: 2\nc: 3\n\n\n"
	rows, err := ParseDescriptor(text)
	if err != nil {
		t.Fatalf("ParseDescriptor() error = %v", err)
	}
	nonEmpty := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}
	if len(rows) != nonEmpty {
		t.Errorf("got %d rows, want %d (one per non-empty line)", len(rows), nonEmpty)
	}
}

func TestParseDescriptorLossless(t *testing.T) {
	lines := []string{
		"Manufacturer: ASUSTeK COMPUTER INC.",
		"Product Name: ROG STRIX B650-A",
		"Flags:    fpu vme de",
	}
	rows, err := ParseDescriptor(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("ParseDescriptor() error = %v", err)
	}
	for i, row := range rows {
		rebuilt := row.Label + ": " + row.Value
		// Reconstruction is exact modulo surrounding whitespace.
		if squash(rebuilt) != squash(lines[i]) {
			t.Errorf("line %d: rebuilt %q, original %q", i, rebuilt, lines[i])
		}
	}
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestParseDescriptorMissingDelimiterAborts(t *testing.T) {
	if _, err := ParseDescriptor("good: line\nbad line without delimiter\n"); err == nil {
		t.Error("ParseDescriptor() expected error, got nil")
	}
}

func TestParseDeviceListSwapsSides(t *testing.T) {
	rows, err := ParseDeviceList("00:1f.3 Audio device: Intel Corporation\n")
	if err != nil {
		t.Fatalf("ParseDeviceList() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	// Split at the first ": ": the device description after it becomes the
	// label, the address before it the value.
	want := Row{Label: "Intel Corporation", Value: "00:1f.3 Audio device"}
	if rows[0] != want {
		t.Errorf("row = %+v, want %+v", rows[0], want)
	}
}

func TestParseDeviceListUSB(t *testing.T) {
	rows, err := ParseDeviceList("Bus 001 Device 002: ID 8087:0032 Intel Corp. AX210 Bluetooth\n")
	if err != nil {
		t.Fatalf("ParseDeviceList() error = %v", err)
	}
	want := Row{Label: "ID 8087:0032 Intel Corp. AX210 Bluetooth", Value: "Bus 001 Device 002"}
	if rows[0] != want {
		t.Errorf("row = %+v, want %+v", rows[0], want)
	}
}

func testSnapshot(t *testing.T, osContent string) *snapshot.Snapshot {
	t.Helper()
	s := &snapshot.Snapshot{
		Baseboard: snapshot.Output{Tool: "dmidecode", Text: "Manufacturer: ASUS\nProduct Name: B650\n"},
		Processor: snapshot.Output{Tool: "lscpu", Text: "Architecture: x86_64\nCPU(s): 8\n"},
		PCI:       snapshot.Output{Tool: "lspci", Text: "00:1f.3 Audio device: Intel Corporation\n"},
		USB:       snapshot.Output{Tool: "lsusb", Text: "Bus 001 Device 001: ID 1d6b:0002 Linux Foundation 2.0 root hub\n"},
	}
	if osContent != "" {
		rel, err := osrelease.Parse(strings.NewReader(osContent))
		if err != nil {
			t.Fatalf("parse test os-release: %v", err)
		}
		s.OS = rel
	}
	return s
}

func TestDistributionRowsFixedOrder(t *testing.T) {
	s := testSnapshot(t, "ID=fedora\nNAME=\"Fedora Linux\"\nVERSION_ID=39\n")

	rows := Rows(PageDistribution, s)
	want := []Row{
		{Label: "ID", Value: "fedora"},
		{Label: "Name", Value: "Fedora Linux"},
		{Label: "Version ID", Value: "39"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows %v, want %d", len(rows), rows, len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestDistributionRowsSkipAbsentFields(t *testing.T) {
	s := testSnapshot(t, "ID=arch\nNAME=\"Arch Linux\"\n")
	for _, row := range Rows(PageDistribution, s) {
		if row.Value == "" {
			t.Errorf("row %q has empty value; absent fields must be skipped", row.Label)
		}
	}
}

func TestDistributionRowsOSReleaseError(t *testing.T) {
	s := testSnapshot(t, "")
	s.OSErr = "an error occurred: open os-release: no such file"

	rows := Rows(PageDistribution, s)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 error row", len(rows))
	}
	if rows[0].Label != "Error" || rows[0].Value != s.OSErr {
		t.Errorf("error row = %+v", rows[0])
	}
}

func TestProcessorPageRows(t *testing.T) {
	s := testSnapshot(t, "ID=fedora\nNAME=Fedora\n")
	rows := Rows(PageProcessor, s)
	want := []Row{
		{Label: "Architecture", Value: "x86_64"},
		{Label: "CPU(s)", Value: "8"},
	}
	if len(rows) != 2 || rows[0] != want[0] || rows[1] != want[1] {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestFailedToolRendersSingleErrorRowOnly(t *testing.T) {
	s := testSnapshot(t, "ID=fedora\nNAME=Fedora\n")
	s.Processor = snapshot.Output{Tool: "lscpu", Err: "an error occurred: exec: \"lscpu\": executable file not found in $PATH"}

	rows := Rows(PageProcessor, s)
	if len(rows) != 1 || rows[0].Label != "Error" {
		t.Fatalf("rows = %v, want single error row", rows)
	}

	// Other pages are unaffected by the failure.
	if rows := Rows(PageMotherboard, s); len(rows) != 2 {
		t.Errorf("motherboard rows = %v, want 2 rows", rows)
	}
	if rows := Rows(PagePCIDevices, s); len(rows) != 1 || rows[0].Label == "Error" {
		t.Errorf("pci rows = %v, want 1 device row", rows)
	}
}

func TestMalformedToolLineRendersErrorRow(t *testing.T) {
	s := testSnapshot(t, "ID=fedora\nNAME=Fedora\n")
	s.Baseboard = snapshot.Output{Tool: "dmidecode", Text: "line with no delimiter\n"}

	rows := Rows(PageMotherboard, s)
	if len(rows) != 1 || rows[0].Label != "Error" {
		t.Errorf("rows = %v, want single error row", rows)
	}
}

func TestRowsPerformNoInvocation(t *testing.T) {
	// Rows reads only the snapshot: re-rendering every page repeatedly must
	// leave the snapshot untouched and cannot reach any runner.
	s := testSnapshot(t, "ID=fedora\nNAME=Fedora\n")
	before := *s
	for i := 0; i < 3; i++ {
		for _, p := range Pages() {
			Rows(p, s)
		}
	}
	if *s != before {
		t.Error("Rows() mutated the snapshot")
	}
}

func TestPageFromKeyRoundTrip(t *testing.T) {
	for _, p := range Pages() {
		if got := PageFromKey(p.Key()); got != p {
			t.Errorf("PageFromKey(%q) = %v, want %v", p.Key(), got, p)
		}
	}
	if got := PageFromKey("nonsense"); got != PageDistribution {
		t.Errorf("PageFromKey(nonsense) = %v, want PageDistribution", got)
	}
}
