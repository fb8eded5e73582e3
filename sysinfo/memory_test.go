package sysinfo

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"testing/quick"
)

const sampleMemInfo = `MemTotal:       16303496 kB
MemFree:         1123344 kB
MemAvailable:   10103496 kB
Buffers:          312040 kB
Cached:          8493120 kB
SwapCached:            0 kB
`

func TestParseMemInfo(t *testing.T) {
	got, err := ParseMemInfo([]byte(sampleMemInfo), false)
	if err != nil {
		t.Fatalf("ParseMemInfo error: %v", err)
	}
	if math.Abs(got.TotalGB-16.303496) > 1e-4 {
		t.Fatalf("TotalGB = %v; want 16.303496", got.TotalGB)
	}
	if math.Abs(got.UsedGB-6.2) > 1e-4 {
		t.Fatalf("UsedGB = %v; want 6.2", got.UsedGB)
	}
}

func TestParseMemInfoFirstEntryWins(t *testing.T) {
	in := "MemTotal: 2000000 kB\nMemAvailable: 500000 kB\nMemTotal: 9 kB\n"
	got, err := ParseMemInfo([]byte(in), false)
	if err != nil {
		t.Fatalf("ParseMemInfo error: %v", err)
	}
	if math.Abs(got.TotalGB-2) > 1e-4 || math.Abs(got.UsedGB-1.5) > 1e-4 {
		t.Fatalf("ParseMemInfo = %+v; want used 1.5 of 2", got)
	}
}

func TestParseMemInfoErrors(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		truncated bool
		want      error
		field     string
	}{
		{"missing MemAvailable", "MemTotal:       16303496 kB\nMemFree:         1123344 kB\n", false, ErrFieldNotFound, "MemAvailable"},
		{"missing MemTotal", "MemFree: 1 kB\nMemAvailable: 10103496 kB\n", false, ErrFieldNotFound, "MemTotal"},
		{"empty", "", false, ErrFieldNotFound, "MemTotal"},
		{"key without colon", "MemTotal 16303496 kB\nMemAvailable: 1 kB\n", false, ErrFieldNotFound, "MemTotal"},
		{"key at end of buffer", "MemTotal:       16303496 kB\nMemAvailable", false, ErrFieldNotFound, "MemAvailable"},
		{"no digits", "MemTotal:        kB\nMemAvailable: 1 kB\n", false, ErrMalformed, "MemTotal"},
		{"colon at end of buffer", "MemTotal: 1 kB\nMemAvailable:", false, ErrMalformed, "MemAvailable"},
		{"cut before MemAvailable", "MemTotal:       16303496 kB\nMemFree:   11", true, ErrTooLarge, "MemAvailable"},
	}

	for _, tc := range tests {
		_, err := ParseMemInfo([]byte(tc.in), tc.truncated)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got err %v; want %v", tc.name, err, tc.want)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Field != tc.field {
			t.Fatalf("%s: error %v does not name field %q", tc.name, err, tc.field)
		}
	}
}

func TestParseMemInfoUsedWithinTotal(t *testing.T) {
	f := func(a, b uint32) bool {
		total, avail := uint64(a), uint64(b)
		if avail > total {
			total, avail = avail, total
		}
		in := fmt.Sprintf("MemTotal: %d kB\nMemFree: 0 kB\nMemAvailable: %d kB\n", total, avail)
		got, err := ParseMemInfo([]byte(in), false)
		if err != nil {
			return false
		}
		want := float64(total-avail) / 1e6
		return math.Abs(got.UsedGB-want) <= 1e-4 &&
			got.UsedGB <= got.TotalGB &&
			got.UsedGB >= 0 && got.TotalGB >= 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
