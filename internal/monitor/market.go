package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Trading session in the exchange's local time. Both ends are inclusive.
const (
	sessionOpen  = 9*time.Hour + 15*time.Minute
	sessionClose = 15*time.Hour + 30*time.Minute
)

type MarketPhase string

const (
	PhaseOpen       MarketPhase = "open"
	PhasePreOpen    MarketPhase = "pre-open"
	PhaseAfterHours MarketPhase = "after hours"
	PhaseWeekend    MarketPhase = "weekend"
)

type MarketStatus struct {
	Open  bool
	Phase MarketPhase
	// MinutesToOpen is set only before the open on a weekday.
	MinutesToOpen int
}

// CheckMarket reports the session state at now, read in now's location.
// Holidays are not modelled.
func CheckMarket(now time.Time) MarketStatus {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return MarketStatus{Phase: PhaseWeekend}
	}

	h, m, s := now.Clock()
	tod := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(now.Nanosecond())

	switch {
	case tod < sessionOpen:
		return MarketStatus{Phase: PhasePreOpen, MinutesToOpen: int((sessionOpen - tod) / time.Minute)}
	case tod <= sessionClose:
		return MarketStatus{Open: true, Phase: PhaseOpen}
	default:
		return MarketStatus{Phase: PhaseAfterHours}
	}
}

func (s MarketStatus) String() string {
	switch s.Phase {
	case PhaseOpen:
		return "MARKET OPEN - Live Trading"
	case PhasePreOpen:
		return fmt.Sprintf("MARKET CLOSED - Opens in %d mins", s.MinutesToOpen)
	case PhaseWeekend:
		return "MARKET CLOSED - Weekend"
	default:
		return "MARKET CLOSED - After Hours"
	}
}

// MarketWatch keeps the last market status for the monitor. It runs as a
// scheduler job, usually once a minute.
type MarketWatch struct {
	mu      sync.Mutex
	now     func() time.Time
	status  MarketStatus
	checked bool
	log     zerolog.Logger
}

func NewMarketWatch(now func() time.Time, log zerolog.Logger) *MarketWatch {
	if now == nil {
		now = time.Now
	}
	return &MarketWatch{
		now: now,
		log: log.With().Str("component", "market_status").Logger(),
	}
}

func (w *MarketWatch) Name() string {
	return "market_status"
}

// Run re-checks the session and logs when the market opens or closes.
func (w *MarketWatch) Run() error {
	status := CheckMarket(w.now())

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.checked && status.Open != w.status.Open {
		w.log.Info().Bool("open", status.Open).Str("status", status.String()).Msg("Market status changed")
	}
	w.status = status
	w.checked = true
	w.log.Debug().Str("status", status.String()).Msg("Market status checked")
	return nil
}

// Status returns the last checked status. ok is false before the first Run.
func (w *MarketWatch) Status() (status MarketStatus, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status, w.checked
}
