package config

import "time"

// AuthConfig holds API auth settings. JWTSecret empty disables the JWT
// middleware (local development); AdminToken empty disables admin routes.
type AuthConfig struct {
	JWTSecret     string
	DashboardUser string
	DashboardPass string
	TokenTTL      time.Duration
	AdminToken    string
}

func loadAuth() AuthConfig {
	return AuthConfig{
		JWTSecret:     envOrDefault(envJWTSecret, ""),
		DashboardUser: envOrDefault(envDashUser, ""),
		DashboardPass: envOrDefault(envDashPass, ""),
		TokenTTL:      durationEnvOrDefault(envTokenTTL, defaultTokenTTL),
		AdminToken:    envOrDefault(envAdminToken, ""),
	}
}
