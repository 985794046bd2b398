package di

import (
	"log/slog"

	authusecase "calorie_backend/internal/feature/auth/usecase"
	"calorie_backend/internal/platform/externalapi/beehiiv"
	"calorie_backend/internal/platform/externalapi/mailgun"
	infrahttp "calorie_backend/internal/platform/http"
)

// NewCodeMailer creates the Mailgun mailer for login codes. Without
// credentials it returns nil and the code flow degrades to logging the code,
// which is how local development runs.
func NewCodeMailer() authusecase.CodeMailer {
	cfg := mailgun.LoadConfig()
	if !cfg.Configured() {
		slog.Warn("mailgun not configured, login codes will be logged instead of mailed")
		return nil
	}
	return mailgun.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewNewsletter creates the Beehiiv client, or nil when unconfigured.
func NewNewsletter() *beehiiv.Client {
	cfg := beehiiv.LoadConfig()
	if !cfg.Configured() {
		slog.Warn("beehiiv not configured, newsletter enrollment disabled")
		return nil
	}
	return beehiiv.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}
