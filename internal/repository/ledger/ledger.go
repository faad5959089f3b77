package ledger

import (
	"lastmile/internal/repository"
)

// Repository хранит заказы, платежи и расчеты. Статусы меняются только
// условными UPDATE, чтобы параллельные эффекты не затирали друг друга.
type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}
