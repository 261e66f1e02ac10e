// Package leads provides the lead scoring bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	apphttp "revenueradar_backend/internal/http"
	"revenueradar_backend/internal/leads/advisor"
	"revenueradar_backend/internal/leads/handler"
	"revenueradar_backend/internal/leads/outreach"
	"revenueradar_backend/internal/leads/service"
	"revenueradar_backend/internal/scoring"
	"revenueradar_backend/platform/ai/groq"
	"revenueradar_backend/platform/config"
	"revenueradar_backend/platform/logger"
	"revenueradar_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(cfg *config.Config, val *validator.Validator, log *logger.Logger) (*Module, error) {
	engine, err := scoring.NewEngine(scoring.DefaultWeights())
	if err != nil {
		return nil, err
	}

	var client advisor.ChatCompleter
	if cfg.IsGroqEnabled() {
		client = groq.NewClient(groq.Config{
			APIKey:  cfg.GetGroqAPIKey(),
			BaseURL: cfg.GetGroqBaseURL(),
			Model:   cfg.GetGroqModel(),
		})
	}

	adv := advisor.New(client, cfg, log)
	svc := service.New(engine, adv, log)
	drafter := outreach.New(client, log)

	return &Module{
		handler: handler.New(svc, drafter, val, cfg.GetMaxUploadSize()),
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts the leads routes under /api/v1/leads.
func (m *Module) RegisterRoutes(rctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(rctx.V1.Group("/leads"))
}
