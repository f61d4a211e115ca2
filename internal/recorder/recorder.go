package recorder

import "BaselExplorer/internal/model"

// YearEvent holds one committed simulation year.
type YearEvent struct {
	SessionID  string
	Params     model.YearParams
	Transition model.YearTransition
	Record     model.YearRecord
}

// ResetEvent records a session being discarded.
type ResetEvent struct {
	SessionID      string
	YearsCommitted int
	FinalYear      int
	FinalCapital   float64
	Reason         string // "RESET" or "EVICTED"
}

// Recorder keeps an audit trail of committed years for later analysis.
type Recorder interface {
	RecordYear(evt *YearEvent) error
	RecordReset(evt *ResetEvent) error
	Close() error
}

// HistoryReader is implemented by recorders that can replay a session's years.
type HistoryReader interface {
	History(sessionID string) ([]model.YearRecord, error)
}
