package ports

import (
	"context"

	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"
)

// Errors signalling misuse of a unit of work. These indicate programming
// errors in the calling code, not runtime store failures.
var (
	// ErrUnitOfWorkAlreadyStarted is returned by Begin when the instance
	// already has an in-flight transaction.
	ErrUnitOfWorkAlreadyStarted = errs.NewValueIsInvalidError("unit of work already started")

	// ErrUnitOfWorkFinished is returned by Begin when the instance has already
	// committed or rolled back. A unit of work represents exactly one
	// transaction and cannot be reused.
	ErrUnitOfWorkFinished = errs.NewValueIsInvalidError("unit of work already finished")

	// ErrUnitOfWorkNotStarted is returned by repository accessors before Begin
	// and by Commit/Rollback without an active transaction.
	ErrUnitOfWorkNotStarted = errs.NewValueIsInvalidError("unit of work not started")
)

// UnitOfWorkFactory creates a fresh UnitOfWork per logical operation.
// Instances are single-use and must not be shared across operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one transactional scope over the catalog store.
// It exposes repositories bound to its transaction and guarantees that the
// underlying session is released whichever way the transaction ends.
//
// Lifecycle: Create -> Begin -> repository operations -> Commit or Rollback.
// Begin fails on an instance that is already started or already finished.
// Commit and Rollback both release the session and clear repository
// references; release happens even when the commit or rollback itself fails.
type UnitOfWork interface {
	// Begin opens the transaction. Returns ErrUnitOfWorkAlreadyStarted on a
	// started instance and ErrUnitOfWorkFinished on a spent one.
	Begin(ctx context.Context) error

	// Commit commits the transaction and releases the session.
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction and releases the session.
	Rollback(ctx context.Context) error

	// ProductRepository returns the product repository bound to the current
	// transaction. Returns ErrUnitOfWorkNotStarted before Begin or after release.
	ProductRepository() (ProductRepository, error)

	// CategoryRepository returns the category repository bound to the current
	// transaction. Returns ErrUnitOfWorkNotStarted before Begin or after release.
	CategoryRepository() (CategoryRepository, error)
}
