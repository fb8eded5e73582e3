// Package main provides the dinfo command-line tool, which prints a one-shot
// colored report of the OS, CPU, memory and working-directory filesystem.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"dinfo/ascii"
	"dinfo/sysinfo"
)

// indent is the left margin of every report line.
const indent = "    "

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var (
	labelColor = color.New(color.FgMagenta)
	valueColor = color.New(color.FgCyan)
	errorColor = color.New(color.FgRed)
)

// collector is the set of readers the report is built from.
type collector interface {
	ReadIdentity() (sysinfo.SystemIdentity, error)
	ReadCPU() (sysinfo.CPUSummary, error)
	ReadMemory() (sysinfo.MemorySummary, error)
	ReadFilesystem() (sysinfo.FilesystemSummary, error)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	os.Exit(run(color.Output, color.Error, sysinfo.NewReader()))
}

// run reads every stage in order and writes the report to stdout. The first
// failing stage is reported on stderr and nothing is written to stdout.
// It returns the process exit code.
func run(stdout, stderr io.Writer, c collector) int {
	id, err := c.ReadIdentity()
	if err != nil {
		return fail(stderr, "system info", err)
	}
	cpu, err := c.ReadCPU()
	if err != nil {
		return fail(stderr, "cpu info", err)
	}
	mem, err := c.ReadMemory()
	if err != nil {
		return fail(stderr, "memory info", err)
	}
	fs, err := c.ReadFilesystem()
	if err != nil {
		return fail(stderr, "filesystem info", err)
	}

	var buf bytes.Buffer
	renderReport(&buf, id, cpu, mem, fs)
	if _, err := stdout.Write(buf.Bytes()); err != nil {
		return 1
	}
	return 0
}

// fail prints the one-line diagnostic for a failed stage.
func fail(stderr io.Writer, stage string, err error) int {
	errorColor.Fprintf(stderr, "[dinfo] Error: failed to read %s: %v\n", stage, err)
	return 1
}

// renderReport writes the splash banner, the labelled fields, a separator
// and the color bar.
func renderReport(w io.Writer, id sysinfo.SystemIdentity, cpu sysinfo.CPUSummary, mem sysinfo.MemorySummary, fs sysinfo.FilesystemSummary) {
	for _, line := range ascii.Splash() {
		fmt.Fprintln(w, indent+valueColor.Sprint(line))
	}
	fmt.Fprintln(w)

	fields := []string{
		field("System", id.String()),
		field("CPU", cpu.Name),
		field("CPU Max Clock Speed", sysinfo.FormatGHz(cpu.ClockGHz)),
		field("Memory Usage", mem.String()),
		field("Filesystem", fs.String()),
	}

	sepLen := 0
	for _, line := range fields {
		fmt.Fprintln(w, indent+line)
		if width := getVisibleWidth(line); width > sepLen {
			sepLen = width
		}
	}
	fmt.Fprintln(w, indent+valueColor.Sprint(strings.Repeat("-", sepLen)))
	fmt.Fprintln(w, indent+colorBar())
	fmt.Fprintln(w)
}

// field renders "Label: value" with the label in magenta and the value in cyan.
func field(label, value string) string {
	return labelColor.Sprint(label+":") + " " + valueColor.Sprint(value)
}

// getVisibleWidth calculates the visible width of a string excluding ANSI escape codes.
func getVisibleWidth(s string) int {
	// Remove all ANSI escape sequences
	stripped := ansiRegex.ReplaceAllString(s, "")
	// Use runewidth to count display width (handles wide runes)
	return runewidth.StringWidth(stripped)
}

// colorBar renders one block per standard background color.
func colorBar() string {
	backgrounds := []color.Attribute{
		color.BgBlack, color.BgRed, color.BgGreen, color.BgYellow,
		color.BgBlue, color.BgMagenta, color.BgCyan, color.BgWhite,
	}

	var bar strings.Builder
	for _, bg := range backgrounds {
		bar.WriteString(color.New(bg).Sprint("    "))
	}
	return bar.String()
}
