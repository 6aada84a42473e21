package repository

import (
	"context"

	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func wrapPgErr(msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
	case pgconv.IsReadOnlyViolation(err):
		return infra.WrapRepoErr(infra.KindReadOnly, msg, err)
	case pgconv.IsRetryable(err):
		// The unit of work replays these; the pg error stays in the chain.
		return infra.WrapRepoErr(infra.KindConflict, msg, err)
	default:
		return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
	}
}
