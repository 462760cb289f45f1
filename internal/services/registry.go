package services

// ServiceContainer bundles the constructed services for handler wiring.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	AvailabilityService AvailabilityService
}
