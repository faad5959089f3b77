package app

import (
	"lastmile/internal/handlers/kafka-consumer/delivery_status_changed"
	"lastmile/internal/handlers/rest/candidates_get"
	"lastmile/internal/handlers/rest/courier_get"
	"lastmile/internal/handlers/rest/courier_post"
	"lastmile/internal/handlers/rest/courier_put"
	"lastmile/internal/handlers/rest/couriers_get"
	"lastmile/internal/handlers/rest/deliveries_get"
	"lastmile/internal/handlers/rest/delivery_accept_post"
	"lastmile/internal/handlers/rest/delivery_cancel_post"
	"lastmile/internal/handlers/rest/delivery_get"
	"lastmile/internal/handlers/rest/delivery_post"
	"lastmile/internal/handlers/rest/delivery_status_post"
	"lastmile/internal/handlers/rest/delivery_tasks_get"
	"lastmile/internal/handlers/rest/payment_callback_post"
	"lastmile/internal/handlers/rest/payment_get"
	"lastmile/internal/handlers/rest/payout_action_post"
	"lastmile/internal/handlers/rest/payout_post"
	"lastmile/internal/handlers/rest/payouts_get"
	"lastmile/internal/handlers/rest/quote_get"
	"lastmile/internal/handlers/rest/referral_policy_post"
	"lastmile/internal/handlers/rest/referral_post"
	"lastmile/internal/handlers/rest/settlement_confirm_post"
	"lastmile/internal/handlers/rest/wallet_get"
	"lastmile/pkg/background"
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceDelivery   ServiceDelivery
	ServiceLedger     ServiceLedger
	ServiceWallet     ServiceWallet
	ServiceReferral   ServiceReferral
	ServiceCompletion ServiceCompletion
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	deliveries_get.Service
	quote_get.Service
	candidates_get.Service
	delivery_accept_post.Service
	delivery_status_post.Service
	delivery_cancel_post.Service

	// Wait дожидается фоновых рассылок при остановке.
	Wait()
}

type ServiceLedger interface {
	payment_get.Service
	payment_callback_post.Service
}

type ServiceWallet interface {
	settlement_confirm_post.Service
	wallet_get.Service
	payouts_get.Service
	payout_post.Service
	payout_action_post.Service
}

type ServiceReferral interface {
	referral_post.Service
	referral_policy_post.Service
}

type ServiceCompletion interface {
	delivery_tasks_get.Service
}

type KafkaWorkerApp struct {
	LedgerService delivery_status_changed.Service
}
