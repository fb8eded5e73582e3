package sysinfo

// FilesystemFromStats converts statfs block counts to GB. Free space counts
// the blocks available to unprivileged users in units of the block size;
// total space counts all blocks in units of the fragment size.
func FilesystemFromStats(availBlocks, blockSize, totalBlocks, fragSize uint64) FilesystemSummary {
	return FilesystemSummary{
		FreeGB:  float64(availBlocks) * float64(blockSize) / bytesPerGB,
		TotalGB: float64(totalBlocks) * float64(fragSize) / bytesPerGB,
	}
}
