package compose

// RegionStatus classifies the outcome of compositing one region.
type RegionStatus string

const (
	// StatusComposited means the region was erased and repainted.
	StatusComposited RegionStatus = "composited"

	// StatusSkippedSmall means the rectangle was under the 10px minimum
	// on either axis and was left untouched.
	StatusSkippedSmall RegionStatus = "skipped_small"

	// StatusSkippedEmpty means the replacement text was blank and the
	// region was left untouched.
	StatusSkippedEmpty RegionStatus = "skipped_empty"

	// StatusFailed means solving, wrapping or drawing failed; the region
	// may be partially painted but the page continued.
	StatusFailed RegionStatus = "failed"
)

// RegionResult records what happened to a single region.
type RegionResult struct {
	Index  int          `json:"index"`
	Bounds Rect         `json:"bounds"`
	Status RegionStatus `json:"status"`

	// FontSize is the size the solver settled on. Zero when the region
	// was skipped or failed before solving.
	FontSize int `json:"font_size,omitempty"`

	// Reason explains a skip or failure.
	Reason string `json:"reason,omitempty"`
}

// PageReport aggregates per-region outcomes for one page composition. A
// page with failed regions still yields a usable image; the report says
// which regions degraded.
type PageReport struct {
	Results    []RegionResult `json:"results"`
	Composited int            `json:"composited"`
	Skipped    int            `json:"skipped"`
	Failed     int            `json:"failed"`
}

func (r *PageReport) add(res RegionResult) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case StatusComposited:
		r.Composited++
	case StatusFailed:
		r.Failed++
	default:
		r.Skipped++
	}
}

// Ok reports whether every region composited or was deliberately skipped.
func (r *PageReport) Ok() bool { return r.Failed == 0 }
