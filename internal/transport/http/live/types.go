package livehttp

import (
	"time"

	"okxpos/internal/monitor"
)

// Controller is the polling surface the dashboard drives.
type Controller interface {
	Snapshot() monitor.Snapshot
	Start() bool
	Stop()
	Running() bool
	Interval() time.Duration
	SetInterval(time.Duration) error
}

// SnapshotView is the wire form of a snapshot: the monitor state plus the
// echarts option object for the PnL chart.
type SnapshotView struct {
	monitor.Snapshot
	Chart map[string]any `json:"chart"`
}

type intervalRequest struct {
	Seconds *float64 `json:"seconds"`
}

type intervalResponse struct {
	Seconds float64 `json:"seconds"`
	Running bool    `json:"running"`
}

type startResponse struct {
	Started bool    `json:"started"`
	Running bool    `json:"running"`
	Seconds float64 `json:"seconds"`
}

// wsMessage is pushed to every dashboard socket.
type wsMessage struct {
	Type string        `json:"type"`
	Data *SnapshotView `json:"data,omitempty"`
	Text string        `json:"text,omitempty"`
}
