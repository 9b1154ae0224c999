package ports

import "context"

// RunInTransaction executes fn inside a single unit-of-work scope.
// It creates a fresh unit of work from the factory, begins the transaction,
// and commits when fn returns nil. When fn (or the commit) returns an error,
// the transaction is rolled back and the error is returned unchanged.
//
// The deferred rollback is a no-op after a successful commit and is
// best-effort on the error path, so the session is released on every exit,
// including panics inside fn.
func RunInTransaction(ctx context.Context, factory UnitOfWorkFactory, fn func(uow UnitOfWork) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
