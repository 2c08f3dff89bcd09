package migration

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
)

type defaultUser struct {
	externalID     string
	email          string
	name           string
	openingBalance string
}

// Demo identities seeded in development
var defaultUsers = []defaultUser{
	{externalID: "demo-alice", email: "alice@example.com", name: "Alice", openingBalance: "1000.00"},
	{externalID: "demo-bob", email: "bob@example.com", name: "Bob", openingBalance: "250.00"},
}

// CreateDefaultUsers registers the demo users and gives each a default
// current account. Running it twice is a no-op.
func CreateDefaultUsers(ctx context.Context, users usecase.UserUseCase, accounts usecase.AccountUseCase) error {
	for _, du := range defaultUsers {
		user, err := users.RegisterUser(ctx, du.externalID, du.email, du.name)
		if err != nil {
			return err
		}

		if err := ensureDefaultAccount(ctx, accounts, user.ID, du.openingBalance); err != nil {
			return err
		}
	}
	return nil
}

func ensureDefaultAccount(ctx context.Context, accounts usecase.AccountUseCase, userID uuid.UUID, balance string) error {
	existing, err := accounts.ListAccounts(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	_, err = accounts.CreateAccount(ctx, userID, usecase.CreateAccountRequest{
		Name:      "Main",
		Type:      "CURRENT",
		Balance:   balance,
		IsDefault: true,
	})
	return err
}
