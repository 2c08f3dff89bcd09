package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/database"
)

// RepositorySuite runs every repository test against a fresh in-memory
// SQLite database.
type RepositorySuite struct {
	suite.Suite
	db  *database.TestDB
	ctx context.Context
}

func TestRepositories(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

// SetupTest is called before each test in the suite.
func (s *RepositorySuite) SetupTest() {
	s.db = database.NewTestDB(s.T())
	s.ctx = context.Background()
}
