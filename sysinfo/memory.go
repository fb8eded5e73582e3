package sysinfo

import (
	"strconv"
	"strings"
)

const memInfoSource = "meminfo"

// ParseMemInfo reads MemTotal and MemAvailable (kilobytes) from
// memory-accounting text. Used memory is total minus available.
//
// A missing key is FieldNotFound, or TooLarge when truncated reports that
// data is only a prefix of the source.
func ParseMemInfo(data []byte, truncated bool) (MemorySummary, error) {
	fields := map[string]string{}
	scanFields(data, truncated, func(key, value string) bool {
		if key == "MemTotal" || key == "MemAvailable" {
			if _, seen := fields[key]; !seen {
				fields[key] = value
			}
		}
		return len(fields) < 2
	})

	totalKB, err := memField(fields, "MemTotal", truncated)
	if err != nil {
		return MemorySummary{}, err
	}
	availKB, err := memField(fields, "MemAvailable", truncated)
	if err != nil {
		return MemorySummary{}, err
	}

	total := totalKB / kBPerGB
	return MemorySummary{
		UsedGB:  total - availKB/kBPerGB,
		TotalGB: total,
	}, nil
}

// memField parses the leading decimal integer of a meminfo value such as
// "   16303496 kB".
func memField(fields map[string]string, key string, truncated bool) (float64, error) {
	value, ok := fields[key]
	if !ok {
		kind := FieldNotFound
		if truncated {
			kind = TooLarge
		}
		return 0, &ParseError{Kind: kind, Source: memInfoSource, Field: key}
	}

	value = strings.TrimLeft(value, " \t")
	end := 0
	for end < len(value) && isDigit(value[end]) {
		end++
	}
	if end == 0 {
		return 0, &ParseError{Kind: Malformed, Source: memInfoSource, Field: key}
	}
	kb, err := strconv.ParseFloat(value[:end], 64)
	if err != nil {
		return 0, &ParseError{Kind: Malformed, Source: memInfoSource, Field: key}
	}
	return kb, nil
}
