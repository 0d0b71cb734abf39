// Package snapshot captures the diagnostic data Examine displays: the output
// of the external inspection tools, the os-release record and the host
// overview. A Snapshot is taken once during initialization and treated as
// immutable; the presentation layer only ever reads it.
package snapshot

import (
	"fmt"
	"os/exec"
	"time"
	"unicode/utf8"

	"github.com/mscrnt/examine/internal/logging"
	"github.com/mscrnt/examine/pkg/hostinfo"
	"github.com/mscrnt/examine/pkg/osrelease"
)

// command describes one diagnostic tool. Name and args stay separate tokens;
// passing them as a single string would make exec look up a binary literally
// named "dmidecode -t baseboard".
type command struct {
	name string
	args []string
}

var (
	baseboardCmd = command{name: "dmidecode", args: []string{"-t", "baseboard"}}
	processorCmd = command{name: "lscpu"}
	pciCmd       = command{name: "lspci"}
	usbCmd       = command{name: "lsusb"}
)

// Runner executes a command and returns its captured standard output. The
// default runner spawns a child process; tests inject their own.
type Runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, err
	}
	return exec.Command(path, args...).Output()
}

// Output is the captured stdout of one tool, or an error placeholder when
// the capture failed. Exactly one of Text/Err is meaningful.
type Output struct {
	Tool string `json:"tool"`
	Text string `json:"text,omitempty"`
	Err  string `json:"error,omitempty"`
}

// Failed reports whether the capture failed and Err holds a placeholder.
func (o Output) Failed() bool {
	return o.Err != ""
}

// Snapshot holds everything the UI renders, captured once at startup.
type Snapshot struct {
	CollectedAt time.Time `json:"collected_at"`

	Baseboard Output `json:"baseboard"`
	Processor Output `json:"processor"`
	PCI       Output `json:"pci"`
	USB       Output `json:"usb"`

	OS    *osrelease.Release `json:"os_release,omitempty"`
	OSErr string             `json:"os_release_error,omitempty"`

	Host hostinfo.Info `json:"host"`
}

// Collect takes a snapshot using real child processes and the standard
// os-release locations.
func Collect() *Snapshot {
	return collect(execRunner, osrelease.Open)
}

func collect(run Runner, openRelease func() (*osrelease.Release, error)) *Snapshot {
	s := &Snapshot{CollectedAt: time.Now().UTC()}

	// Each tool runs to completion before the next starts. A failure is
	// recorded inline and never aborts the snapshot.
	s.Baseboard = capture(run, baseboardCmd)
	s.Processor = capture(run, processorCmd)
	s.PCI = capture(run, pciCmd)
	s.USB = capture(run, usbCmd)

	rel, err := openRelease()
	if err != nil {
		logging.Errorf("os-release read failed: %v", err)
		s.OSErr = Placeholder(err)
	} else {
		s.OS = rel
	}

	s.Host = hostinfo.Collect()
	return s
}

func capture(run Runner, cmd command) Output {
	out := Output{Tool: cmd.name}

	raw, err := run(cmd.name, cmd.args...)
	if err != nil {
		logging.Errorf("%s command failed: %v", cmd.name, err)
		out.Err = Placeholder(err)
		return out
	}
	if !utf8.Valid(raw) {
		logging.Errorf("%s produced non-UTF-8 output", cmd.name)
		out.Err = Placeholder(fmt.Errorf("%s produced non-text output", cmd.name))
		return out
	}

	out.Text = string(raw)
	return out
}

// Placeholder converts a capture failure into the human-readable string
// shown in place of the missing data.
func Placeholder(err error) string {
	return fmt.Sprintf("an error occurred: %v", err)
}
