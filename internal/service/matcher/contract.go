//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matcher_test
package matcher

import (
	"context"

	"lastmile/internal/entities"
)

type Repository interface {
	FindNearby(ctx context.Context, query entities.CandidateQuery) ([]entities.Candidate, error)
	ListAvailable(ctx context.Context) ([]entities.Candidate, error)
}
