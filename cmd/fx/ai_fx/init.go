package ai_fx

import (
	"log"

	"go.uber.org/fx"

	"tourvisto/internal/config"
	"tourvisto/pkg/utils"
)

var Module = fx.Provide(provideTextClient)

// provideTextClient returns nil when the provider cannot be built so the app
// still starts; trip generation reports the misconfiguration per request.
func provideTextClient(cfg *config.Config) utils.TextClientInterface {
	client, err := utils.NewTextClient(cfg.AI.Provider, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		log.Printf("Warning: AI client not available: %v", err)
		return nil
	}
	return client
}
