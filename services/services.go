package services

import (
	"go.uber.org/zap"

	"github.com/blogem/tracker/repositories"
)

// Services holds all service instances
type Services struct {
	Auth     AuthService
	Tracking TrackingService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, credentials CredentialStore, logger *zap.SugaredLogger) *Services {
	return &Services{
		Auth:     NewAuthService(credentials, logger),
		Tracking: NewTrackingService(repos.Weight, repos.Calories),
	}
}
