package budget

// Report is the memory footprint of a frame set against a device limit
type Report struct {
	Frames        int
	BytesPerFrame int
	UsedBytes     int
	LimitBytes    int
	WithinBudget  bool
}

// BytesPerFrame is the packed size of one 1-bit frame
func BytesPerFrame(width, height int) int {
	return width * height / 8
}

// Audit compares totalFrames frames of width x height against limitKB.
// The result is advisory; it never blocks output.
func Audit(totalFrames, width, height, limitKB int) Report {
	perFrame := BytesPerFrame(width, height)
	used := totalFrames * perFrame
	limit := limitKB * 1024
	return Report{
		Frames:        totalFrames,
		BytesPerFrame: perFrame,
		UsedBytes:     used,
		LimitBytes:    limit,
		WithinBudget:  used <= limit,
	}
}

// UsedKB is the footprint in kilobytes
func (r Report) UsedKB() float64 {
	return float64(r.UsedBytes) / 1024
}

// Percent is the share of the limit in use, or 0 when there is no limit
func (r Report) Percent() float64 {
	if r.LimitBytes == 0 {
		return 0
	}
	return float64(r.UsedBytes) / float64(r.LimitBytes) * 100
}
