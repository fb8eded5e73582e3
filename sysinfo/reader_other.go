//go:build !linux

package sysinfo

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Reader reads the snapshot through gopsutil on hosts without the Linux
// pseudo-files.
type Reader struct {
	// Dir is the path whose filesystem is measured; empty means the
	// current working directory
	Dir string
}

// NewReader returns a Reader for the current host.
func NewReader() *Reader {
	return &Reader{}
}

// ReadIdentity returns the kernel name, release and machine architecture.
func (r *Reader) ReadIdentity() (SystemIdentity, error) {
	info, err := host.Info()
	if err != nil {
		return SystemIdentity{}, &IOError{Op: "host info", Err: err}
	}
	return SystemIdentity{
		OSName:      info.OS,
		OSRelease:   info.KernelVersion,
		MachineArch: info.KernelArch,
	}, nil
}

// ReadCPU returns the first processor's model name and clock speed.
func (r *Reader) ReadCPU() (CPUSummary, error) {
	infos, err := cpu.Info()
	if err != nil {
		return CPUSummary{}, &IOError{Op: "cpu info", Err: err}
	}
	if len(infos) == 0 {
		return CPUSummary{}, &ParseError{Kind: FieldNotFound, Source: "cpu info", Field: "model name"}
	}

	name := infos[0].ModelName
	if name == "" {
		name = fmt.Sprintf("%d Cores", len(infos))
	}
	if len(name) > maxCPUNameLen {
		return CPUSummary{}, &ParseError{Kind: NameTooLong, Source: "cpu info", Field: "model name"}
	}
	return CPUSummary{Name: name, ClockGHz: infos[0].Mhz / 1000}, nil
}

// ReadMemory returns used and total physical memory.
func (r *Reader) ReadMemory() (MemorySummary, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemorySummary{}, &IOError{Op: "virtual memory", Err: err}
	}
	total := float64(vm.Total) / bytesPerGB
	return MemorySummary{
		UsedGB:  total - float64(vm.Available)/bytesPerGB,
		TotalGB: total,
	}, nil
}

// ReadFilesystem returns free and total space of the filesystem holding
// r.Dir.
func (r *Reader) ReadFilesystem() (FilesystemSummary, error) {
	dir := r.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return FilesystemSummary{}, &IOError{Op: "getwd", Err: err}
		}
		dir = wd
	}

	usage, err := disk.Usage(dir)
	if err != nil {
		return FilesystemSummary{}, &IOError{Op: "disk usage", Path: dir, Err: err}
	}
	return FilesystemFromStats(usage.Free, 1, usage.Total, 1), nil
}
