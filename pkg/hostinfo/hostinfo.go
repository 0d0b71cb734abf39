// Package hostinfo collects a host overview (OS, CPU, memory) via gopsutil.
package hostinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info is the overview shown on the Overview page and by `examine info`.
type Info struct {
	Host   HostInfo   `json:"host"`
	CPU    CPUInfo    `json:"cpu"`
	Memory MemoryInfo `json:"memory"`
}

// HostInfo contains host/OS information.
type HostInfo struct {
	Hostname             string `json:"hostname"`
	Platform             string `json:"platform"`
	PlatformVersion      string `json:"platform_version"`
	KernelVersion        string `json:"kernel_version"`
	OS                   string `json:"os"`
	Architecture         string `json:"architecture"`
	VirtualizationSystem string `json:"virtualization_system,omitempty"`
	VirtualizationRole   string `json:"virtualization_role,omitempty"`
}

// CPUInfo contains CPU information.
type CPUInfo struct {
	Model         string  `json:"model"`
	Vendor        string  `json:"vendor"`
	PhysicalCores int     `json:"physical_cores"`
	LogicalCores  int     `json:"logical_cores"`
	MaxFreqMHz    float64 `json:"max_freq_mhz"`
}

// MemoryInfo contains memory information.
type MemoryInfo struct {
	TotalGB     float64 `json:"total_gb"`
	AvailableGB float64 `json:"available_gb"`
	UsedPercent float64 `json:"used_percent"`
}

// Collect gathers the host overview. Individual probe failures leave the
// affected fields zero; Collect itself never fails.
func Collect() Info {
	info := Info{}
	info.Host.Architecture = runtime.GOARCH

	if h, err := host.Info(); err == nil {
		info.Host.Hostname = h.Hostname
		info.Host.Platform = h.Platform
		info.Host.PlatformVersion = h.PlatformVersion
		info.Host.KernelVersion = h.KernelVersion
		info.Host.OS = h.OS
		info.Host.VirtualizationSystem = h.VirtualizationSystem
		info.Host.VirtualizationRole = h.VirtualizationRole
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPU.Model = cpus[0].ModelName
		info.CPU.Vendor = cpus[0].VendorID
		info.CPU.MaxFreqMHz = cpus[0].Mhz
	}
	info.CPU.PhysicalCores, _ = cpu.Counts(false)
	info.CPU.LogicalCores, _ = cpu.Counts(true)

	if vm, err := mem.VirtualMemory(); err == nil {
		const gib = 1024 * 1024 * 1024
		info.Memory.TotalGB = float64(vm.Total) / gib
		info.Memory.AvailableGB = float64(vm.Available) / gib
		info.Memory.UsedPercent = vm.UsedPercent
	}

	return info
}
