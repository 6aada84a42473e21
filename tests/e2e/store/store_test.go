//go:build e2e

package store_test

import (
	"testing"

	"equipment-rental/tests/common/storetest"
	"equipment-rental/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type PostgresStoreSuite struct {
	e2e.SharedSuite
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) TestScenarios() {
	storetest.RunScenarios(s.T(), s.NewUnitOfWork)
}
