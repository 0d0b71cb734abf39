package display

import (
	"fmt"
	"strings"

	"github.com/mscrnt/examine/pkg/osrelease"
	"github.com/mscrnt/examine/pkg/snapshot"
)

// fieldSpec binds a Distribution row label to its os-release accessor. The
// table is iterated in order; absent or empty fields produce no row.
type fieldSpec struct {
	label string
	get   func(*osrelease.Release) string
}

func joined(get func(*osrelease.Release) []string) func(*osrelease.Release) string {
	return func(r *osrelease.Release) string {
		return strings.Join(get(r), ", ")
	}
}

var osReleaseFields = []fieldSpec{
	{"ID", func(r *osrelease.Release) string { return r.ID }},
	{"Name", func(r *osrelease.Release) string { return r.Name }},
	{"Pretty Name", func(r *osrelease.Release) string { return r.PrettyName }},
	{"Version", func(r *osrelease.Release) string { return r.Version }},
	{"Version ID", func(r *osrelease.Release) string { return r.VersionID }},
	{"ID Like", joined(func(r *osrelease.Release) []string { return r.IDLike })},
	{"Version Codename", func(r *osrelease.Release) string { return r.VersionCodename }},
	{"Build ID", func(r *osrelease.Release) string { return r.BuildID }},
	{"Image ID", func(r *osrelease.Release) string { return r.ImageID }},
	{"Image Version", func(r *osrelease.Release) string { return r.ImageVersion }},
	{"Vendor Name", func(r *osrelease.Release) string { return r.VendorName }},
	{"ANSI Color", func(r *osrelease.Release) string { return r.ANSIColor }},
	{"Logo", func(r *osrelease.Release) string { return r.Logo }},
	{"CPE Name", func(r *osrelease.Release) string { return r.CPEName }},
	{"Home URL", func(r *osrelease.Release) string { return r.HomeURL }},
	{"Vendor URL", func(r *osrelease.Release) string { return r.VendorURL }},
	{"Documentation URL", func(r *osrelease.Release) string { return r.DocURL }},
	{"Support URL", func(r *osrelease.Release) string { return r.SupportURL }},
	{"Bug Report URL", func(r *osrelease.Release) string { return r.BugReportURL }},
	{"Privacy Policy URL", func(r *osrelease.Release) string { return r.PrivacyURL }},
	{"Support End", func(r *osrelease.Release) string { return r.SupportEnd }},
	{"Variant", func(r *osrelease.Release) string { return r.Variant }},
	{"Variant ID", func(r *osrelease.Release) string { return r.VariantID }},
	{"Default Hostname", func(r *osrelease.Release) string { return r.DefaultHostname }},
	{"Architecture", func(r *osrelease.Release) string { return r.Architecture }},
	{"SYSEXT_LEVEL", func(r *osrelease.Release) string { return r.SysextLevel }},
	{"SYSEXT_SCOPE", joined(func(r *osrelease.Release) []string { return r.SysextScope })},
	{"CONFEXT_LEVEL", func(r *osrelease.Release) string { return r.ConfextLevel }},
	{"CONFEXT_SCOPE", joined(func(r *osrelease.Release) []string { return r.ConfextScope })},
	{"Portable Prefixes", joined(func(r *osrelease.Release) []string { return r.PortablePrefix })},
}

func distributionRows(s *snapshot.Snapshot) []Row {
	if s.OS == nil {
		msg := s.OSErr
		if msg == "" {
			msg = "an error occurred: os-release not available"
		}
		return errorRow(msg)
	}

	var rows []Row
	for _, f := range osReleaseFields {
		if v := f.get(s.OS); v != "" {
			rows = append(rows, Row{Label: f.label, Value: v})
		}
	}
	return rows
}

func overviewRows(s *snapshot.Snapshot) []Row {
	h := s.Host
	var rows []Row
	add := func(label, value string) {
		if value != "" {
			rows = append(rows, Row{Label: label, Value: value})
		}
	}

	add("Hostname", h.Host.Hostname)
	add("Operating System", h.Host.OS)
	add("Platform", strings.TrimSpace(h.Host.Platform+" "+h.Host.PlatformVersion))
	add("Kernel", h.Host.KernelVersion)
	add("Architecture", h.Host.Architecture)
	if h.Host.VirtualizationSystem != "" {
		add("Virtualization", strings.TrimSpace(h.Host.VirtualizationSystem+" "+h.Host.VirtualizationRole))
	}
	add("CPU Model", h.CPU.Model)
	add("CPU Vendor", h.CPU.Vendor)
	if h.CPU.PhysicalCores > 0 || h.CPU.LogicalCores > 0 {
		add("Cores", fmt.Sprintf("%d physical / %d logical", h.CPU.PhysicalCores, h.CPU.LogicalCores))
	}
	if h.CPU.MaxFreqMHz > 0 {
		add("Max Clock", fmt.Sprintf("%.0f MHz", h.CPU.MaxFreqMHz))
	}
	if h.Memory.TotalGB > 0 {
		add("Memory", fmt.Sprintf("%.1f GB total, %.1f GB available", h.Memory.TotalGB, h.Memory.AvailableGB))
	}
	return rows
}
