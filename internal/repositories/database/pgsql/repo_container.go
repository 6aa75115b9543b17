package pgsql

import (
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		VoucherRepo: newPgxVoucherRepository(dbPool),
		ProjectRepo: newPgxProjectRepository(dbPool),
	}
}
