package payment

import (
	"errors"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
	"lastmile/internal/entities"
)

var errEmptyRefundRef = errors.New("payment gateway returned empty refund reference")

// Суммы передаются строкой: в структуре protobuf числа - double, копейки терять нельзя.
func toRefundRequest(req entities.RefundRequest, idempotencyKey string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"payment_id":      strconv.FormatInt(req.PaymentID, 10),
		"order_id":        strconv.FormatInt(req.OrderID, 10),
		"amount":          strconv.FormatInt(req.Amount, 10),
		"reason":          req.Reason,
		"idempotency_key": idempotencyKey,
	})
}

func refundRef(resp *structpb.Struct) (string, error) {
	if resp == nil {
		return "", errEmptyRefundRef
	}
	ref := resp.GetFields()["refund_ref"].GetStringValue()
	if ref == "" {
		return "", errEmptyRefundRef
	}
	return ref, nil
}
