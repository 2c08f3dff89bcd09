package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType("  select * from accounts"))
	assert.Equal(t, "UPDATE", extractQueryType(`UPDATE "accounts" SET balance_cents = balance_cents + 5000`))
	assert.Equal(t, "", extractQueryType("CREATE INDEX idx ON budgets (user_id)"))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "ACCOUNTS", extractTableName(`SELECT * FROM "accounts" WHERE id = 1`))
	assert.Equal(t, "BUDGET_LOCKS", extractTableName("INSERT INTO budget_locks (budget_id) VALUES (1)"))
	assert.Equal(t, "TRANSACTIONS", extractTableName(`UPDATE "transactions" SET x = 1`))
	assert.Equal(t, "", extractTableName("BEGIN"))
}
