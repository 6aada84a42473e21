//go:build unit

package memstore_test

import (
	"testing"

	"equipment-rental/internal/infra/memstore"
	"equipment-rental/internal/usecase/shared"
	"equipment-rental/tests/common/storetest"
)

func TestMemoryStoreScenarios(t *testing.T) {
	storetest.RunScenarios(t, func(*testing.T) shared.UnitOfWork {
		return memstore.New()
	})
}
