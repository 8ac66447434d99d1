package presenter

import (
	"fmt"
	"time"
)

// DisplayRow is one formatted table row, keyed by InstID.
type DisplayRow struct {
	InstID   string `json:"instId"`
	Size     string `json:"size"`
	MarkPx   string `json:"markPx"`
	EntryPx  string `json:"entryPx"`
	LiqPx    string `json:"liqPx"`
	BePx     string `json:"bePx"`
	Upl      string `json:"upl"`
	MgnRatio string `json:"mgnRatio"`
	Margin   string `json:"margin"`
	Lever    string `json:"lever"`
	MgnMode  string `json:"mgnMode"`
	Adl      string `json:"adl"`
}

// PnLSeries holds chart labels and values in row order.
type PnLSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Len returns the number of points.
func (s PnLSeries) Len() int {
	return len(s.Labels)
}

// Result is the complete replacement view produced by one refresh.
type Result struct {
	Rows   []DisplayRow `json:"rows"`
	Series PnLSeries    `json:"series"`
	At     time.Time    `json:"at"`
}

// BusinessError is a well-formed response whose code is not "0".
type BusinessError struct {
	Code string
	Msg  string
}

func (e *BusinessError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("okx code %s", e.Code)
	}
	return e.Msg
}
