// Package monitor runs the position refresh cycle and owns the dashboard state.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"okxpos/internal/gateway/notifier"
	"okxpos/internal/logger"
	"okxpos/internal/okx"
	"okxpos/internal/presenter"
	"okxpos/internal/scheduler"

	"github.com/google/uuid"
)

// ErrMissingCredentials aborts a cycle before any network call.
var ErrMissingCredentials = errors.New("missing environment variables")

const (
	lineFetching      = "Fetching positions..."
	lineUpdated       = "Positions updated successfully."
	lineMissingCreds  = "Error: Missing environment variables."
	noticeMissingCred = "Please set OKX_API_KEY, OKX_SECRET, and OKX_PASSPHRASE environment variables."
)

// Fetcher retrieves the raw positions response.
type Fetcher interface {
	FetchPositions(ctx context.Context, creds okx.Credentials) (okx.Envelope, error)
}

// CredentialSource is consulted at the start of every cycle.
type CredentialSource interface {
	Credentials() okx.Credentials
}

// CredentialFunc adapts a function to CredentialSource.
type CredentialFunc func() okx.Credentials

func (f CredentialFunc) Credentials() okx.Credentials { return f() }

// Publisher receives a fresh snapshot after every state change.
type Publisher interface {
	Publish(Snapshot)
}

// Options wires a Service.
type Options struct {
	Fetcher     Fetcher
	Credentials CredentialSource
	Loop        *scheduler.IntervalLoop
	State       *State
	Notifier    notifier.TextNotifier
	Now         func() time.Time
}

// Service glues credentials, fetcher, presenter and state into refresh cycles.
type Service struct {
	fetcher  Fetcher
	creds    CredentialSource
	loop     *scheduler.IntervalLoop
	state    *State
	notifier notifier.TextNotifier
	nowFn    func() time.Time

	mu         sync.RWMutex
	baseCtx    context.Context
	publishers []Publisher
}

func NewService(opts Options) (*Service, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("monitor: fetcher is required")
	}
	if opts.Credentials == nil {
		return nil, errors.New("monitor: credential source is required")
	}
	if opts.Loop == nil {
		opts.Loop = scheduler.NewIntervalLoop("positions", 120*time.Second)
	}
	if opts.State == nil {
		opts.State = NewState(0)
	}
	if opts.Notifier == nil {
		opts.Notifier = notifier.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		fetcher:  opts.Fetcher,
		creds:    opts.Credentials,
		loop:     opts.Loop,
		state:    opts.State,
		notifier: opts.Notifier,
		nowFn:    opts.Now,
		baseCtx:  context.Background(),
	}, nil
}

// AddPublisher registers a snapshot consumer.
func (s *Service) AddPublisher(p Publisher) {
	if p == nil {
		return
	}
	s.mu.Lock()
	s.publishers = append(s.publishers, p)
	s.mu.Unlock()
}

// Run binds the loop lifetime to ctx, optionally starts polling, and blocks
// until ctx is done.
func (s *Service) Run(ctx context.Context, autoStart bool) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()
	if autoStart {
		s.Start()
	}
	<-ctx.Done()
	s.loop.Stop()
	return nil
}

// Start begins polling. It returns false when a loop is already running.
func (s *Service) Start() bool {
	s.mu.RLock()
	ctx := s.baseCtx
	s.mu.RUnlock()
	started := s.loop.Start(ctx, func(ctx context.Context) {
		_ = s.Refresh(ctx)
	})
	if started {
		logger.Infof("position polling started interval=%s", s.loop.Interval())
	}
	s.publish()
	return started
}

// Stop ends polling and waits for the loop to exit.
func (s *Service) Stop() {
	if !s.loop.Stop() {
		return
	}
	logger.Infof("position polling stopped")
	s.publish()
}

func (s *Service) Running() bool {
	return s.loop.Running()
}

func (s *Service) Interval() time.Duration {
	return s.loop.Interval()
}

// SetInterval updates the wait used from the next sleep on.
func (s *Service) SetInterval(d time.Duration) error {
	if err := s.loop.SetInterval(d); err != nil {
		return err
	}
	logger.Infof("refresh interval set to %s", d)
	s.publish()
	return nil
}

// Snapshot returns the current dashboard view.
func (s *Service) Snapshot() Snapshot {
	res := s.state.Result()
	return Snapshot{
		Rows:            res.Rows,
		Series:          res.Series,
		Logs:            s.state.Logs(),
		UpdatedAt:       res.At,
		IntervalSeconds: s.loop.Interval().Seconds(),
		Running:         s.loop.Running(),
	}
}

// Refresh runs one cycle. The returned error is already logged and notified;
// it is exposed for callers that want to classify the outcome.
func (s *Service) Refresh(ctx context.Context) (err error) {
	cycleID := uuid.NewString()
	log := logger.With("cycle", cycleID)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			s.reportException(log, err)
		}
		s.publish()
	}()

	creds := s.creds.Credentials()
	if !creds.Complete() {
		s.appendLine(lineMissingCreds)
		s.notify(noticeMissingCred)
		log.Error("refresh aborted", "reason", ErrMissingCredentials)
		return ErrMissingCredentials
	}

	s.appendLine(lineFetching)
	s.publish()
	started := s.nowFn()
	env, err := s.fetcher.FetchPositions(ctx, creds)
	if err == nil {
		var res presenter.Result
		res, err = presenter.Present(env, s.nowFn())
		if err == nil {
			s.state.Replace(res)
			s.appendLine(lineUpdated)
			log.Info("positions updated", "rows", len(res.Rows), "elapsed", s.nowFn().Sub(started))
			return nil
		}
	}

	var be *presenter.BusinessError
	switch {
	case errors.As(err, &be):
		text := "Error: " + be.Msg
		s.appendLine(text)
		s.notify(text)
		log.Warn("okx rejected request", "code", be.Code, "msg", be.Msg, "http", env.HTTPStatus)
	case ctx.Err() != nil:
		s.appendLine("Refresh cancelled.")
		log.Info("refresh cancelled", "err", err)
	default:
		s.reportException(log, err)
	}
	return err
}

func (s *Service) reportException(log *slog.Logger, err error) {
	text := "Exception: " + err.Error()
	s.appendLine(text)
	s.notify(text)
	log.Error("refresh failed", "err", err)
}

func (s *Service) appendLine(text string) {
	s.state.Log(s.nowFn(), text)
}

func (s *Service) notify(text string) {
	if err := s.notifier.SendText(text); err != nil {
		logger.Warnf("notify failed: %v", err)
	}
}

func (s *Service) publish() {
	s.mu.RLock()
	pubs := append([]Publisher(nil), s.publishers...)
	s.mu.RUnlock()
	if len(pubs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, p := range pubs {
		p.Publish(snap)
	}
}
