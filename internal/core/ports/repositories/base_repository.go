package repositories

import "context"

// TxRepositories are the repositories bound to one open transaction.
// Rows read through the ForUpdate finders stay locked until the transaction ends.
type TxRepositories struct {
	Boxes  BoxRepositoryFacade
	Events EventRepositoryFacade
}

// UnitOfWork runs a callback inside a single transaction.
// Writes made through the repositories handed to fn become visible together
// when fn returns nil, and are discarded when it returns an error.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
