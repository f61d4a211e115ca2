package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"BaselExplorer/internal/bank"
	"BaselExplorer/internal/calculator"
	"BaselExplorer/internal/model"
	"BaselExplorer/internal/recorder"
	"BaselExplorer/internal/simulation"
)

// ErrAuditUnavailable is returned when the configured recorder keeps no history.
var ErrAuditUnavailable = errors.New("audit trail not available")

// Defaults seed a new bank when the caller does not supply values.
type Defaults struct {
	InitialCapital float64
	InitialAssets  float64
	RWAFraction    float64
	StartYear      int
	HorizonEndYear int
}

// StartRequest overrides Defaults field by field; zero values keep the default.
type StartRequest struct {
	InitialCapital float64 `json:"initial_capital"`
	InitialAssets  float64 `json:"initial_assets"`
	RWAFraction    float64 `json:"rwa_fraction"`
	StartYear      int     `json:"start_year"`
}

// Preview is a computed but uncommitted year.
type Preview struct {
	Year           int                  `json:"year"`
	Params         model.YearParams     `json:"params"` // after clamping
	Transition     model.YearTransition `json:"transition"`
	CARStatus      model.CARStatus      `json:"car_status"`
	LeverageStatus model.LeverageStatus `json:"leverage_status"`
}

// Service runs simulations for many independent sessions.
type Service struct {
	registry *Registry
	policy   simulation.Policy
	defaults Defaults
	rec      recorder.Recorder
	log      *slog.Logger
}

// NewService wires a Service. rec may be nil.
func NewService(reg *Registry, policy simulation.Policy, defaults Defaults, rec recorder.Recorder, log *slog.Logger) *Service {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{registry: reg, policy: policy, defaults: defaults, rec: rec, log: log}
}

// Start creates a session and initialises its bank.
func (s *Service) Start(req StartRequest) (string, model.BankState, error) {
	sess := s.registry.Create()
	state, err := s.initialize(sess, req)
	if err != nil {
		s.registry.Delete(sess.ID)
		return "", model.BankState{}, fmt.Errorf("initialize session: %w", err)
	}
	s.log.Info("session created", "session", sess.ID, "capital", state.Capital, "assets", state.Assets,
		"rwa_fraction", state.RWAFraction, "start_year", state.StartYear)
	return sess.ID, state, nil
}

// Initialize starts a new bank in an existing session, typically after
// Reset. It fails with bank.ErrAlreadyInitialized while a bank exists.
func (s *Service) Initialize(id string, req StartRequest) (model.BankState, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return model.BankState{}, err
	}
	state, err := s.initialize(sess, req)
	if err != nil {
		return model.BankState{}, fmt.Errorf("initialize session: %w", err)
	}
	s.log.Info("session initialized", "session", id, "capital", state.Capital, "assets", state.Assets,
		"rwa_fraction", state.RWAFraction, "start_year", state.StartYear)
	return state, nil
}

func (s *Service) initialize(sess *Session, req StartRequest) (model.BankState, error) {
	capital, assets, frac, year := s.defaults.InitialCapital, s.defaults.InitialAssets, s.defaults.RWAFraction, s.defaults.StartYear
	if req.InitialCapital != 0 {
		capital = req.InitialCapital
	}
	if req.InitialAssets != 0 {
		assets = req.InitialAssets
	}
	if req.RWAFraction != 0 {
		frac = req.RWAFraction
	}
	if req.StartYear != 0 {
		year = req.StartYear
	}

	var state model.BankState
	err := sess.With(func(store *bank.Store) error {
		if err := store.Initialize(capital, assets, frac, year); err != nil {
			return err
		}
		var err error
		state, err = store.CurrentState()
		return err
	})
	return state, err
}

// State returns the bank of a session.
func (s *Service) State(id string) (model.BankState, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return model.BankState{}, err
	}
	var state model.BankState
	err = sess.With(func(store *bank.Store) error {
		var err error
		state, err = store.CurrentState()
		return err
	})
	return state, err
}

// Preview computes the next year of a session without committing it.
func (s *Service) Preview(id string, params model.YearParams) (Preview, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return Preview{}, err
	}
	var p Preview
	err = sess.With(func(store *bank.Store) error {
		var err error
		p, err = s.preview(store, params)
		return err
	})
	return p, err
}

func (s *Service) preview(store *bank.Store, params model.YearParams) (Preview, error) {
	state, err := store.CurrentState()
	if err != nil {
		return Preview{}, err
	}
	clamped := s.policy.Clamp(params)
	tr := simulation.AdvanceYear(state, clamped)
	return Preview{
		Year:           state.Year,
		Params:         clamped,
		Transition:     tr,
		CARStatus:      calculator.ClassifyCAR(tr.CAR),
		LeverageStatus: calculator.ClassifyLeverage(tr.Leverage),
	}, nil
}

// Commit recomputes the year from params and commits it.
func (s *Service) Commit(id string, params model.YearParams) (model.YearRecord, model.BankState, error) {
	sess, err := s.registry.Get(id)
	if err != nil {
		return model.YearRecord{}, model.BankState{}, err
	}

	var (
		rec   model.YearRecord
		state model.BankState
		p     Preview
	)
	err = sess.With(func(store *bank.Store) error {
		var err error
		p, err = s.preview(store, params)
		if err != nil {
			return err
		}
		rec, err = simulation.Confirm(store, p.Transition)
		if err != nil {
			return err
		}
		state, err = store.CurrentState()
		return err
	})
	if err != nil {
		return model.YearRecord{}, model.BankState{}, err
	}

	s.log.Info("year committed", "session", id, "year", rec.Year, "capital", rec.Capital, "car", rec.CAR, "leverage", rec.Leverage)
	if err := s.rec.RecordYear(&recorder.YearEvent{SessionID: id, Params: p.Params, Transition: p.Transition, Record: rec}); err != nil {
		s.log.Error("record year", "session", id, "err", err)
	}
	return rec, state, nil
}

// Summary aggregates a session's history against the configured horizon.
func (s *Service) Summary(id string) (bank.Summary, error) {
	state, err := s.State(id)
	if err != nil {
		return bank.Summary{}, err
	}
	return bank.Summarize(state, s.horizonEnd(state)), nil
}

// horizonEnd keeps the configured horizon length for banks started in other years.
func (s *Service) horizonEnd(state model.BankState) int {
	return state.StartYear + (s.defaults.HorizonEndYear - s.defaults.StartYear)
}

// Reset discards the bank of a session but keeps the session, so it can be
// initialised again. Resetting an empty session is a no-op.
func (s *Service) Reset(id string) error {
	sess, err := s.registry.Get(id)
	if err != nil {
		return err
	}
	s.discard(sess, "RESET")
	return nil
}

// Audit returns the recorded years of a session. It needs a recorder that
// keeps history, such as the SQLite one.
func (s *Service) Audit(id string) ([]model.YearRecord, error) {
	if _, err := s.registry.Get(id); err != nil {
		return nil, err
	}
	hr, ok := s.rec.(recorder.HistoryReader)
	if !ok {
		return nil, ErrAuditUnavailable
	}
	records, err := hr.History(id)
	if err != nil {
		return nil, fmt.Errorf("read audit trail: %w", err)
	}
	if records == nil {
		records = []model.YearRecord{}
	}
	return records, nil
}

// EvictIdle drops sessions not used within ttl.
func (s *Service) EvictIdle(ttl time.Duration) int {
	evicted := s.registry.Evict(ttl)
	for _, sess := range evicted {
		s.discard(sess, "EVICTED")
	}
	if len(evicted) > 0 {
		s.log.Info("sessions evicted", "count", len(evicted), "remaining", s.registry.Len())
	}
	return len(evicted)
}

// discard resets the session's store. Only a store that held a bank is
// reported to the recorder.
func (s *Service) discard(sess *Session, reason string) {
	evt := &recorder.ResetEvent{SessionID: sess.ID, Reason: reason}
	held := false
	_ = sess.With(func(store *bank.Store) error {
		if st, err := store.CurrentState(); err == nil {
			held = true
			evt.YearsCommitted = len(st.History)
			evt.FinalYear = st.Year
			evt.FinalCapital = st.Capital
		}
		store.Reset()
		return nil
	})
	if !held {
		return
	}
	s.log.Info("session reset", "session", sess.ID, "reason", reason, "years", evt.YearsCommitted)
	if err := s.rec.RecordReset(evt); err != nil {
		s.log.Error("record reset", "session", sess.ID, "err", err)
	}
}
