package shared

import (
	"errors"

	"equipment-rental/internal/infra"
	"equipment-rental/internal/pkg/errs"
)

// StoreErr marks storage failures so the handler layer can map them without
// knowing about repository kinds. Lookup misses pass through untouched.
func StoreErr(err error) error {
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) && repoErr.Kind != infra.KindNotFound {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return err
}
