// Package sysinfo reads a point-in-time snapshot of the local machine:
// OS identity, CPU model and maximum clock, memory usage and free space on
// the filesystem holding the working directory.
//
// The parsers for the kernel's pseudo-file formats are platform independent
// and operate on byte slices; Reader wires them to the real sources.
package sysinfo

// SystemIdentity is the kernel name, release and machine architecture.
type SystemIdentity struct {
	OSName      string
	OSRelease   string
	MachineArch string
}

// CPUSummary describes the first processor.
type CPUSummary struct {
	// Name is the model name, or "<n> Cores" when the source has none
	Name string

	// ClockGHz is the maximum clock speed in GHz
	ClockGHz float64
}

// MemorySummary is physical memory usage in GB (10^9 bytes).
type MemorySummary struct {
	UsedGB  float64
	TotalGB float64
}

// FilesystemSummary is free and total capacity in GB (10^9 bytes).
type FilesystemSummary struct {
	FreeGB  float64
	TotalGB float64
}

// bytesPerGB is the decimal gigabyte used throughout the report.
const bytesPerGB = 1e9

// kBPerGB converts the kilobyte figures of the kernel's text files.
const kBPerGB = 1e6
