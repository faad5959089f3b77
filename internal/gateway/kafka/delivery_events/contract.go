//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_events_test
package delivery_events

type sender interface {
	Send(topic, key string, value []byte) error
}
