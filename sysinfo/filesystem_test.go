package sysinfo

import (
	"math"
	"testing"
	"testing/quick"
)

func TestFilesystemFromStats(t *testing.T) {
	got := FilesystemFromStats(30517578, 4096, 122070312, 4096)
	if math.Abs(got.FreeGB-125.0) > 1e-3 {
		t.Fatalf("FreeGB = %v; want ~125", got.FreeGB)
	}
	if math.Abs(got.TotalGB-500.0) > 1e-3 {
		t.Fatalf("TotalGB = %v; want ~500", got.TotalGB)
	}

	if got := FilesystemFromStats(0, 4096, 0, 4096); got.FreeGB != 0 || got.TotalGB != 0 {
		t.Fatalf("empty filesystem = %+v; want zeros", got)
	}
}

func TestFilesystemFreeWithinTotal(t *testing.T) {
	f := func(a, b uint32, shift uint8) bool {
		avail, total := uint64(a), uint64(b)
		if avail > total {
			avail, total = total, avail
		}
		size := uint64(512) << (shift % 8)
		got := FilesystemFromStats(avail, size, total, size)
		return got.FreeGB <= got.TotalGB && got.FreeGB >= 0 && got.TotalGB >= 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
