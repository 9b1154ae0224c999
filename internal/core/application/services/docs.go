// Package services contains the transaction-bounded business logic of the
// catalog. Each service operation validates its input, opens exactly one
// unit-of-work scope via ports.RunInTransaction, delegates to repositories,
// and lets the scope's exit behavior decide commit or rollback.
//
// Services depend only on the ports interfaces, never on a concrete store,
// so they can be exercised with mocks in unit tests and with the GORM
// adapters in integration tests.
package services
