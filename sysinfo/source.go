package sysinfo

import (
	"io"
	"log/slog"
	"os"
)

// Read caps for the kernel text sources.
const (
	cpuInfoLimit = 128 << 10
	memInfoLimit = 8 << 10
	maxFreqLimit = 64
)

// readBounded reads at most limit bytes of path. truncated is true when the
// file holds more than limit bytes; the returned data is then cut at limit.
// The file is closed on every return path.
func readBounded(path string, limit int64) (data []byte, truncated bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	data, err = io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, false, &IOError{Op: "read", Path: path, Err: err}
	}
	if int64(len(data)) > limit {
		slog.Warn("source exceeds read cap, using prefix", "path", path, "limit", limit)
		return data[:limit], true, nil
	}
	return data, false, nil
}
