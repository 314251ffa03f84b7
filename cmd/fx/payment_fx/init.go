package payment_fx

import (
	"go.uber.org/fx"

	"tourvisto/internal/config"
	"tourvisto/internal/services"
)

var Module = fx.Provide(providePaymentService)

func providePaymentService(cfg *config.Config) services.PaymentService {
	return services.NewPaymentService(cfg)
}
