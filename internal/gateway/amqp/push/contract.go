//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=push_test
package push

import "context"

type publisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}
