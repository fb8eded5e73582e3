//go:build linux

package sysinfo

import (
	"os"

	"golang.org/x/sys/unix"
)

// Reader reads the snapshot from the kernel's pseudo-files and system calls.
// The zero value is not usable; start from NewReader and override paths as
// needed.
type Reader struct {
	CPUInfoPath string
	MaxFreqPath string
	MemInfoPath string

	// Dir is the path whose filesystem is measured; empty means the
	// current working directory
	Dir string
}

// NewReader returns a Reader for the standard Linux sources.
func NewReader() *Reader {
	return &Reader{
		CPUInfoPath: "/proc/cpuinfo",
		MaxFreqPath: "/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq",
		MemInfoPath: "/proc/meminfo",
	}
}

// ReadIdentity returns the kernel name, release and machine from uname(2).
func (r *Reader) ReadIdentity() (SystemIdentity, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return SystemIdentity{}, &IOError{Op: "uname", Err: err}
	}
	return SystemIdentity{
		OSName:      unix.ByteSliceToString(u.Sysname[:]),
		OSRelease:   unix.ByteSliceToString(u.Release[:]),
		MachineArch: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}

// ReadCPU returns the CPU model name and maximum clock speed.
func (r *Reader) ReadCPU() (CPUSummary, error) {
	data, truncated, err := readBounded(r.CPUInfoPath, cpuInfoLimit)
	if err != nil {
		return CPUSummary{}, err
	}
	name, err := ParseCPUName(data, truncated)
	if err != nil {
		return CPUSummary{}, err
	}

	freq, _, err := readBounded(r.MaxFreqPath, maxFreqLimit)
	if err != nil {
		return CPUSummary{}, err
	}
	ghz, err := ParseMaxFrequency(freq)
	if err != nil {
		return CPUSummary{}, err
	}

	return CPUSummary{Name: name, ClockGHz: ghz}, nil
}

// ReadMemory returns used and total physical memory.
func (r *Reader) ReadMemory() (MemorySummary, error) {
	data, truncated, err := readBounded(r.MemInfoPath, memInfoLimit)
	if err != nil {
		return MemorySummary{}, err
	}
	return ParseMemInfo(data, truncated)
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

	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return FilesystemSummary{}, &IOError{Op: "statfs", Path: dir, Err: err}
	}
	return FilesystemFromStats(st.Bavail, uint64(st.Bsize), st.Blocks, uint64(st.Frsize)), nil
}
