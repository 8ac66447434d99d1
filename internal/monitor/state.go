package monitor

import (
	"sync"
	"time"

	"okxpos/internal/pkg/ringlog"
	"okxpos/internal/presenter"
)

// Snapshot is everything the dashboard shows at one moment.
type Snapshot struct {
	Rows            []presenter.DisplayRow `json:"rows"`
	Series          presenter.PnLSeries    `json:"series"`
	Logs            []string               `json:"logs"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	IntervalSeconds float64                `json:"intervalSeconds"`
	Running         bool                   `json:"running"`
}

// State holds the last successful refresh and the bounded debug log.
// Rows and series are only ever replaced wholesale.
type State struct {
	mu     sync.RWMutex
	result presenter.Result
	log    *ringlog.Buffer
}

func NewState(logCapacity int) *State {
	return &State{
		result: presenter.Result{
			Rows:   []presenter.DisplayRow{},
			Series: presenter.PnLSeries{Labels: []string{}, Values: []float64{}},
		},
		log: ringlog.New(logCapacity),
	}
}

// Replace swaps in a new refresh result.
func (s *State) Replace(res presenter.Result) {
	s.mu.Lock()
	s.result = res
	s.mu.Unlock()
}

// Result returns the last successful refresh.
func (s *State) Result() presenter.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Log appends a debug line.
func (s *State) Log(at time.Time, text string) ringlog.Entry {
	return s.log.Append(ringlog.Entry{At: at, Text: text})
}

func (s *State) Logs() []string {
	return s.log.Lines()
}
