// Package postgres provides the GORM-based Unit of Work for courier persistence.
//
// Each command gets its own unit of work from the factory. Repositories
// handed out after Begin run inside the transaction; repositories taken
// without Begin use the plain connection, which is how read-only query
// handlers use them.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, collector)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.CourierRepository().Update(ctx, courier); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// After a successful Commit the aggregates written in the transaction are
// reported to the PersistenceObserver, one count per aggregate kind.
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
package postgres

import (
	"context"
	"sort"

	"routing/internal/adapters/out/postgres/courierrepo"
	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// aggregateKind names the aggregate type for commit reporting.
func aggregateKind(aggregate any) string {
	switch aggregate.(type) {
	case *courier.Courier:
		return "courier"
	default:
		return "unknown"
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	observer ports.PersistenceObserver
}

// NewGormUnitOfWorkFactory builds the factory. observer may be nil.
func NewGormUnitOfWorkFactory(db *gorm.DB, observer ports.PersistenceObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observer: observer}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observer:          f.observer,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// CourierReader returns a repository bound to the plain connection, for
// read paths that need no transaction.
func (f *GormUnitOfWorkFactory) CourierReader() ports.CourierRepository {
	return f.create().CourierRepository()
}

// GormUnitOfWork coordinates one database transaction and records which
// aggregates were written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observer          ports.PersistenceObserver
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and reports the written aggregates.
// Returns gorm.ErrInvalidTransaction when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil && uow.observer != nil {
		for _, c := range uow.WrittenAggregates() {
			uow.observer.ObserveCommittedAggregates(c.Kind, c.Count)
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction. After a successful Commit it returns
// gorm.ErrInvalidTransaction, which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CourierRepository returns a repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return courierrepo.NewGormCourierRepository(db, uow)
}

// TrackAggregate is called by repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// AggregateCount is the number of distinct aggregates of one kind written
// in a unit of work.
type AggregateCount struct {
	Kind  string
	Count int
}

// WrittenAggregates counts the distinct aggregates tracked so far, by kind
// in alphabetical order. An aggregate written twice counts once.
func (uow *GormUnitOfWork) WrittenAggregates() []AggregateCount {
	seen := make(map[kernel.UUID]struct{}, len(uow.trackedAggregates))
	byKind := make(map[string]int)
	for _, tracked := range uow.trackedAggregates {
		if _, ok := seen[tracked.ID]; ok {
			continue
		}
		seen[tracked.ID] = struct{}{}
		byKind[aggregateKind(tracked.Aggregate)]++
	}

	counts := make([]AggregateCount, 0, len(byKind))
	for kind, n := range byKind {
		counts = append(counts, AggregateCount{Kind: kind, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Kind < counts[j].Kind })
	return counts
}
