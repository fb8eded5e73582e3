package sysinfo

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
)

// maxCPUNameLen is the longest model name accepted, in bytes.
const maxCPUNameLen = 255

const (
	cpuInfoSource = "cpuinfo"
	maxFreqSource = "cpuinfo_max_freq"
)

// scanFields calls fn for each "key: value" line of data, with the key
// trimmed of surrounding whitespace and the value holding everything after
// the first ':' up to the newline. Lines without ':' are skipped. When
// truncated is set the final line has no terminating newline and is
// ignored since it may be cut short. Scanning stops when fn returns false.
func scanFields(data []byte, truncated bool, fn func(key, value string) bool) {
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			if truncated {
				return
			}
			line, data = data, nil
		}

		sep := bytes.IndexByte(line, ':')
		if sep < 0 {
			continue
		}
		key := strings.TrimSpace(string(line[:sep]))
		if !fn(key, string(line[sep+1:])) {
			return
		}
	}
}

// ParseCPUName extracts the display name from processor-information text.
// The first "model name" entry wins. Sources without one (many ARM kernels)
// are named after the number of "processor" entries, as "<n> Cores"; a
// source with no processor entries at all counts as one core.
//
// truncated reports that data is only a prefix of the source. A model name
// found in the prefix is still returned, but the core count cannot be
// trusted and yields a TooLarge error.
func ParseCPUName(data []byte, truncated bool) (string, error) {
	var (
		name  string
		found bool
		cores int
	)
	scanFields(data, truncated, func(key, value string) bool {
		switch key {
		case "model name":
			name, found = strings.TrimPrefix(value, " "), true
			return false
		case "processor":
			cores++
		}
		return true
	})

	if found {
		if len(name) > maxCPUNameLen {
			return "", &ParseError{Kind: NameTooLong, Source: cpuInfoSource, Field: "model name"}
		}
		return name, nil
	}
	if truncated {
		return "", &ParseError{Kind: TooLarge, Source: cpuInfoSource, Field: "processor"}
	}
	if cores == 0 {
		cores = 1
	}
	return strconv.Itoa(cores) + " Cores", nil
}

// ParseMaxFrequency converts the kHz figure of a cpufreq max-frequency file
// to GHz. Like strtof, it parses the longest numeric prefix after leading
// whitespace; content after the number is logged and ignored. Data with no
// numeric prefix is Malformed.
func ParseMaxFrequency(data []byte) (float64, error) {
	s := strings.TrimSpace(string(data))
	num := numericPrefix(s)
	if num == "" {
		return 0, &ParseError{Kind: Malformed, Source: maxFreqSource}
	}
	khz, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, &ParseError{Kind: Malformed, Source: maxFreqSource}
	}
	if len(num) < len(s) {
		slog.Warn("ignoring trailing content after max frequency", "value", num, "rest", s[len(num):])
	}
	return khz / kBPerGB, nil
}

// numericPrefix returns the longest prefix of s shaped like a decimal
// number: an optional sign, digits and an optional fraction. It returns ""
// unless the prefix holds at least one digit.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	return s[:i]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
