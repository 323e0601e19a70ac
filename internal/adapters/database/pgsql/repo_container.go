package pgsql

import (
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BoxRepo:    newPgxBoxRepository(dbPool),
		EventRepo:  newPgxEventRepository(dbPool),
		UnitOfWork: newUnitOfWork(dbPool),
	}
}
