// Package postgres provides the PostgreSQL implementation of the outbound
// persistence ports, built on GORM. The unit of work owns the transaction
// lifecycle; the repositories it hands out operate on that transaction and
// never commit or roll back themselves.
package postgres

import (
	"context"
	"database/sql"

	"github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres/categoryrepo"
	"github.com/VishnuPunati/product-catalog-service/internal/adapters/out/postgres/productrepo"
	"github.com/VishnuPunati/product-catalog-service/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates single-use units of work over a shared
// GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to db.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh, not-yet-started unit of work.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork is a single-use transactional scope. After Commit or
// Rollback the instance is finished and cannot be reused; create a new one
// through the factory instead.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	products   ports.ProductRepository
	categories ports.CategoryRepository

	finished bool
}

// Begin opens the transaction at read committed isolation and binds the
// repository instances to it.
func (u *GormUnitOfWork) Begin(ctx context.Context) error {
	if u.finished {
		return ports.ErrUnitOfWorkFinished
	}
	if u.tx != nil {
		return ports.ErrUnitOfWorkAlreadyStarted
	}

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if tx.Error != nil {
		return tx.Error
	}

	u.tx = tx
	u.products = productrepo.NewGormProductRepository(tx)
	u.categories = categoryrepo.NewGormCategoryRepository(tx)
	return nil
}

// Commit commits the transaction. The unit of work is finished whether the
// commit succeeds or fails.
func (u *GormUnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ports.ErrUnitOfWorkNotStarted
	}

	err := u.tx.Commit().Error
	u.release()
	return err
}

// Rollback rolls back the transaction. The unit of work is finished whether
// the rollback succeeds or fails.
func (u *GormUnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ports.ErrUnitOfWorkNotStarted
	}

	err := u.tx.Rollback().Error
	u.release()
	return err
}

// ProductRepository returns the product repository bound to the open
// transaction.
func (u *GormUnitOfWork) ProductRepository() (ports.ProductRepository, error) {
	if u.tx == nil {
		return nil, ports.ErrUnitOfWorkNotStarted
	}
	return u.products, nil
}

// CategoryRepository returns the category repository bound to the open
// transaction.
func (u *GormUnitOfWork) CategoryRepository() (ports.CategoryRepository, error) {
	if u.tx == nil {
		return nil, ports.ErrUnitOfWorkNotStarted
	}
	return u.categories, nil
}

func (u *GormUnitOfWork) release() {
	u.tx = nil
	u.products = nil
	u.categories = nil
	u.finished = true
}
