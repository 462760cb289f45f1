package handlers

import (
	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Availability *AvailabilityHandler
}

func NewAppHandlers(cfg *config.Config, svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, svc.AuthService, cfg),
		Profile:      NewProfileHandler(base, svc.ProfileService),
		Availability: NewAvailabilityHandler(base, svc.AvailabilityService),
	}
}
