package database

import (
	"errors"
	"sync"
	"sync/atomic"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// DefaultMaxRetries is the number of extra attempts a unit gets after a
// wallet version conflict.
const DefaultMaxRetries = 3

// UnitResult describes how a unit of work was executed.
type UnitResult struct {
	// Atomic is false when the store could not provide a transaction and the
	// work ran statement by statement. Partial application is possible then.
	Atomic   bool
	Attempts int
}

// UnitStats are process-wide counters for operators.
type UnitStats struct {
	AtomicRuns   int64
	DegradedRuns int64
	Retries      int64
}

// UnitOption configures a UnitOfWork.
type UnitOption func(*UnitOfWork)

// WithMaxRetries sets how many times a unit is re-run after a version conflict.
func WithMaxRetries(n int) UnitOption {
	return func(u *UnitOfWork) {
		if n >= 0 {
			u.maxRetries = n
		}
	}
}

// WithForceNonAtomic disables transactions regardless of store support.
func WithForceNonAtomic(force bool) UnitOption {
	return func(u *UnitOfWork) {
		u.forceNonAtomic = force
	}
}

// UnitOfWork groups store mutations so they commit or roll back together.
//
// Transaction support is detected once and cached. When the store cannot begin
// a transaction the unit still runs, against the plain handle, and every such
// run is logged and counted so operators know reconciliation is load-bearing.
type UnitOfWork struct {
	db             *gorm.DB
	maxRetries     int
	forceNonAtomic bool

	once   sync.Once
	atomic bool

	atomicRuns   atomic.Int64
	degradedRuns atomic.Int64
	retries      atomic.Int64
}

// NewUnitOfWork creates a UnitOfWork over db.
func NewUnitOfWork(db *gorm.DB, opts ...UnitOption) *UnitOfWork {
	u := &UnitOfWork{db: db, maxRetries: DefaultMaxRetries}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SupportsTransactions reports whether units run inside real transactions.
func (u *UnitOfWork) SupportsTransactions() bool {
	u.detect()
	return u.atomic
}

// Stats returns a snapshot of the unit counters.
func (u *UnitOfWork) Stats() UnitStats {
	return UnitStats{
		AtomicRuns:   u.atomicRuns.Load(),
		DegradedRuns: u.degradedRuns.Load(),
		Retries:      u.retries.Load(),
	}
}

// Run executes work with a transactional handle. In atomic mode any error
// returned by work (or a panic) rolls everything back, and a
// ErrConcurrentModification triggers a fresh attempt up to the retry limit.
// In degraded mode work runs once with no rollback.
func (u *UnitOfWork) Run(work func(tx *gorm.DB) error) (UnitResult, error) {
	if !u.SupportsTransactions() {
		return u.runDegraded(work)
	}

	result := UnitResult{Atomic: true}
	for {
		result.Attempts++
		u.atomicRuns.Add(1)

		err := u.db.Transaction(work)
		if err == nil {
			return result, nil
		}

		if apperrors.HasCode(err, apperrors.ErrConcurrentModification) && result.Attempts <= u.maxRetries {
			u.retries.Add(1)
			logger.Get().Debugw("retrying unit of work after version conflict", "attempt", result.Attempts)
			continue
		}

		return result, classify(err)
	}
}

func (u *UnitOfWork) runDegraded(work func(tx *gorm.DB) error) (UnitResult, error) {
	u.degradedRuns.Add(1)
	logger.Get().Warnw("unit of work running without transaction",
		"degraded_runs", u.degradedRuns.Load(),
		"forced", u.forceNonAtomic,
	)

	result := UnitResult{Atomic: false, Attempts: 1}
	if err := work(u.db); err != nil {
		logger.Get().Errorw("non-atomic unit of work failed; writes already applied are kept until reconciliation",
			"error", err,
		)
		return result, classify(err)
	}
	return result, nil
}

func (u *UnitOfWork) detect() {
	u.once.Do(func() {
		if u.forceNonAtomic {
			logger.Get().Warn("transactions disabled by configuration; units of work are not atomic")
			return
		}

		tx := u.db.Begin()
		if tx.Error != nil {
			logger.Get().Warnw("store does not support transactions; units of work are not atomic", "error", tx.Error)
			return
		}
		if err := tx.Rollback().Error; err != nil {
			logger.Get().Warnw("rollback of the detection transaction failed; units of work are not atomic", "error", err)
			return
		}
		u.atomic = true
	})
}

// classify passes AppErrors through and reports anything else as a store failure.
func classify(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
