//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loyalty_test
package loyalty

import (
	"context"

	"lastmile/internal/entities"
)

type Repository interface {
	InsertCreditIfAbsent(ctx context.Context, credit entities.LoyaltyCredit) (*entities.LoyaltyCredit, error)
}
