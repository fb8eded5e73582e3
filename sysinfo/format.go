// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
)

// FormatGB renders a gigabyte figure with two decimals.
//
// Example: FormatGB(15.9876) returns "15.99 GB"
func FormatGB(gb float64) string {
	return fmt.Sprintf("%.2f GB", gb)
}

// FormatGHz renders a clock speed with two decimals.
//
// Example: FormatGHz(3.5) returns "3.50 GHz"
func FormatGHz(ghz float64) string {
	return fmt.Sprintf("%.2f GHz", ghz)
}

// String returns "<os> <release> <arch>", skipping empty parts.
func (id SystemIdentity) String() string {
	return JoinNonEmpty(id.OSName, id.OSRelease, id.MachineArch)
}

// String returns used over total, e.g. "6.20 GB / 16.30 GB".
func (m MemorySummary) String() string {
	return FormatGB(m.UsedGB) + " / " + FormatGB(m.TotalGB)
}

// String returns e.g. "120.00 GB free of 500.00 GB".
func (f FilesystemSummary) String() string {
	return FormatGB(f.FreeGB) + " free of " + FormatGB(f.TotalGB)
}

// JoinNonEmpty joins the non-blank parts with single spaces.
//
// Example: JoinNonEmpty("Linux", "", "x86_64") returns "Linux x86_64"
func JoinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
