package lockbox

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/giansalex/cw-lockbox/logger"
	"github.com/giansalex/cw-lockbox/store"
	"github.com/giansalex/cw-lockbox/types"
)

// engine provides a concrete implementation of the Engine interface.
// The record store handle is threaded through every operation explicitly;
// there is no module-level state, which keeps the engine deterministic and
// testable against an in-memory store substitute.
type engine struct {
	records store.LockRecordStore

	config   Config
	clock    Clock
	logger   logger.Logger
	metrics  Metrics
	transfer transferBuilder
}

// NewEngine creates a lock lifecycle engine over the given record store.
func NewEngine(records store.LockRecordStore, opts ...Option) Engine {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if config.Logger == nil {
		config.Logger = logger.NewNoOpLogger()
	}
	if config.Metrics == nil {
		config.Metrics = NewNoOpMetrics()
	}
	if config.Clock == nil {
		config.Clock = NewHostClock(0)
	}

	return &engine{
		records: records,
		config:  config,
		clock:   config.Clock,
		logger:  config.Logger.WithComponent("lockbox"),
		metrics: config.Metrics,
	}
}

// CreateLock validates the deposit parameters and persists a new Locked
// record. No transfer instruction is emitted: the deposit is assumed already
// escrowed by the inbound call.
func (e *engine) CreateLock(ctx context.Context, caller types.PartyID, req CreateLockRequest) (*types.LockRecord, error) {
	if caller == "" || req.Recipient == "" {
		e.metrics.IncrCreateRequest(req.Token, false)
		return nil, ErrInvalidParty
	}
	if req.Amount == 0 {
		e.metrics.IncrCreateRequest(req.Token, false)
		return nil, ErrInvalidAmount
	}

	now := e.clock.Now()
	height := e.clock.Height()
	if err := validateCondition(req.Condition, now, height, e.config.MaxLockDuration, e.config.MaxLockHeightDelta); err != nil {
		e.metrics.IncrCreateRequest(req.Token, false)
		return nil, err
	}
	if err := authorize(e.config.ReleasePolicy, ActionCreate, nil, caller); err != nil {
		e.metrics.IncrCreateRequest(req.Token, false)
		return nil, err
	}

	record := &types.LockRecord{
		ID:        e.records.NextID(),
		Owner:     caller,
		Recipient: req.Recipient,
		Token:     req.Token,
		Amount:    req.Amount,
		Condition: req.Condition,
		Status:    types.StatusLocked,
		CreatedAt: now,
	}

	if err := e.records.Put(ctx, record); err != nil {
		e.metrics.IncrCreateRequest(req.Token, false)
		return nil, err
	}

	e.metrics.IncrCreateRequest(req.Token, true)
	e.metrics.SetActiveLocks(e.records.ActiveLen())
	e.logger.Infow("Lock created",
		"lock", record.ID,
		"owner", record.Owner,
		"recipient", record.Recipient,
		"token", record.Token,
		"amount", record.Amount,
		"condition", record.Condition.Kind)
	return record, nil
}

// Release performs the Locked -> Released transition. All checks run against
// a read copy first; the transition itself re-validates the status inside the
// store's transactional update so a finalized lock can never release twice.
func (e *engine) Release(ctx context.Context, caller types.PartyID, id types.LockID) (*types.LockRecord, *types.TransferInstruction, error) {
	record, err := e.records.Get(ctx, id)
	if err != nil {
		e.metrics.IncrReleaseRequest(id, false)
		return nil, nil, err
	}

	if record.Status.IsTerminal() {
		e.metrics.IncrReleaseRequest(id, false)
		return nil, nil, fmt.Errorf("%w: lock %s is %s", ErrAlreadyFinalized, id, record.Status)
	}
	if err := authorize(e.config.ReleasePolicy, ActionRelease, record, caller); err != nil {
		e.metrics.IncrReleaseRequest(id, false)
		return nil, nil, err
	}

	now := e.clock.Now()
	if !conditionMet(record.Condition, now, e.clock.Height()) {
		e.metrics.IncrReleaseRequest(id, false)
		return nil, nil, fmt.Errorf("%w: lock %s", ErrNotYetReleasable, id)
	}

	updated, err := e.finalize(ctx, id, types.StatusReleased, now)
	if err != nil {
		e.metrics.IncrReleaseRequest(id, false)
		return nil, nil, err
	}

	instruction := e.transfer.releaseTransfer(updated)
	e.metrics.IncrReleaseRequest(id, true)
	e.metrics.ObserveCustodyDuration(id, now.Sub(updated.CreatedAt), true)
	e.metrics.SetActiveLocks(e.records.ActiveLen())
	e.logger.Infow("Lock released",
		"lock", id,
		"caller", caller,
		"beneficiary", instruction.Beneficiary,
		"amount", instruction.Amount)
	return updated, instruction, nil
}

// Cancel performs the Locked -> Cancelled transition. Only the owner may
// cancel, and only strictly before the release condition is met.
func (e *engine) Cancel(ctx context.Context, caller types.PartyID, id types.LockID) (*types.LockRecord, *types.TransferInstruction, error) {
	record, err := e.records.Get(ctx, id)
	if err != nil {
		e.metrics.IncrCancelRequest(id, false)
		return nil, nil, err
	}

	if record.Status.IsTerminal() {
		e.metrics.IncrCancelRequest(id, false)
		return nil, nil, fmt.Errorf("%w: lock %s is %s", ErrAlreadyFinalized, id, record.Status)
	}
	if err := authorize(e.config.ReleasePolicy, ActionCancel, record, caller); err != nil {
		e.metrics.IncrCancelRequest(id, false)
		return nil, nil, err
	}

	now := e.clock.Now()
	if conditionMet(record.Condition, now, e.clock.Height()) {
		e.metrics.IncrCancelRequest(id, false)
		return nil, nil, fmt.Errorf("%w: lock %s", ErrCancelWindowClosed, id)
	}

	updated, err := e.finalize(ctx, id, types.StatusCancelled, now)
	if err != nil {
		e.metrics.IncrCancelRequest(id, false)
		return nil, nil, err
	}

	instruction := e.transfer.refundTransfer(updated)
	e.metrics.IncrCancelRequest(id, true)
	e.metrics.ObserveCustodyDuration(id, now.Sub(updated.CreatedAt), false)
	e.metrics.SetActiveLocks(e.records.ActiveLen())
	e.logger.Infow("Lock cancelled",
		"lock", id,
		"owner", caller,
		"amount", instruction.Amount)
	return updated, instruction, nil
}

// finalize commits the terminal transition through the store's transactional
// update, re-checking the status on the authoritative record.
func (e *engine) finalize(ctx context.Context, id types.LockID, target types.LockStatus, now time.Time) (*types.LockRecord, error) {
	return e.records.Update(ctx, id, func(r *types.LockRecord) error {
		if !r.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: lock %s is %s", ErrAlreadyFinalized, id, r.Status)
		}
		r.Status = target
		r.FinalizedAt = now
		return nil
	})
}

// GetLock returns the full record for the given id.
func (e *engine) GetLock(ctx context.Context, id types.LockID) (*types.LockRecord, error) {
	return e.records.Get(ctx, id)
}

// ListLocksByOwner resolves the owner index to full records in insertion order.
func (e *engine) ListLocksByOwner(ctx context.Context, owner types.PartyID, filter LockFilter) ([]*types.LockRecord, error) {
	return e.resolve(ctx, e.records.ListByOwner(owner), filter)
}

// ListLocksByRecipient resolves the recipient index to full records in insertion order.
func (e *engine) ListLocksByRecipient(ctx context.Context, recipient types.PartyID, filter LockFilter) ([]*types.LockRecord, error) {
	return e.resolve(ctx, e.records.ListByRecipient(recipient), filter)
}

func (e *engine) resolve(ctx context.Context, ids iter.Seq[types.LockID], filter LockFilter) ([]*types.LockRecord, error) {
	if filter == nil {
		filter = FilterAll
	}

	records := make([]*types.LockRecord, 0)
	var resolveErr error
	ids(func(id types.LockID) bool {
		record, err := e.records.Get(ctx, id)
		if err != nil {
			// An indexed id without a record means the store is corrupt.
			resolveErr = err
			return false
		}
		if filter(record) {
			records = append(records, record)
		}
		return true
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return records, nil
}
