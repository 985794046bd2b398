package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"calorie_backend/internal/feature/auth/domain/entity"
)

const (
	// CodeTTL is how long an emailed login code stays valid.
	CodeTTL = 5 * time.Minute

	// Codes are drawn uniformly from [codeMin, codeMin+codeSpan), so they are
	// always exactly six digits.
	codeMin  = 100000
	codeSpan = 900000

	codeEmailSubject = "Your Login OTP Code"
)

// OTPRepository abstracts the persistence layer for login codes.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type OTPRepository interface {
	// Create persists a new code row.
	Create(ctx context.Context, code *entity.OTPCode) error

	// FindLatestActive retrieves the most recently created row for the
	// email/code pair that is unused and unexpired at the given instant.
	// Returns ErrCodeNotFound when no such row exists.
	FindLatestActive(ctx context.Context, email, code string, now time.Time) (*entity.OTPCode, error)

	// FindLatest retrieves the most recently created row for the email/code
	// pair regardless of its used flag or expiry, for error classification.
	// Returns ErrCodeNotFound when the pair was never issued.
	FindLatest(ctx context.Context, email, code string) (*entity.OTPCode, error)

	// MarkUsed flips the used flag of the given row. The update is conditional
	// on the row still being unused; a lost race returns ErrCodeAlreadyUsed,
	// which is what makes consumption single-use under concurrent verifies.
	MarkUsed(ctx context.Context, id uint) error
}

// Newsletter checks and creates newsletter subscriptions.
// Failures here never block a login; callers must treat them as best effort.
type Newsletter interface {
	IsSubscribed(ctx context.Context, email string) (bool, error)
	Subscribe(ctx context.Context, email string) error
}

// CodeMailer delivers a login code by email.
type CodeMailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// otpUsecase implements the email-code login flow.
type otpUsecase struct {
	codes        OTPRepository
	users        UserRepository
	newsletter   Newsletter // optional
	mailer       CodeMailer // optional; absence degrades to logging the code
	jwtGenerator JWTGenerator
	now          func() time.Time
}

// NewOTPUsecase creates a new otpUsecase instance. newsletter and mailer may
// be nil when the corresponding service is not configured.
func NewOTPUsecase(codes OTPRepository, users UserRepository, newsletter Newsletter, mailer CodeMailer, jwtGenerator JWTGenerator) *otpUsecase {
	return &otpUsecase{
		codes:        codes,
		users:        users,
		newsletter:   newsletter,
		mailer:       mailer,
		jwtGenerator: jwtGenerator,
		now:          time.Now,
	}
}

// GenerateCode draws a six-digit code uniformly from [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}

// RequestCode issues a login code for the email: it enrolls the address in
// the newsletter (best effort), persists the code with a five-minute expiry,
// and emails it. The request succeeds once the code is persisted; a failed
// email send degrades to logging the code server-side rather than failing
// the login attempt.
func (u *otpUsecase) RequestCode(ctx context.Context, email string) error {
	u.ensureNewsletterSubscription(ctx, email)

	code, err := GenerateCode()
	if err != nil {
		return err
	}

	rec := &entity.OTPCode{
		Email:     email,
		Code:      code,
		ExpiresAt: u.now().Add(CodeTTL),
	}
	if err := u.codes.Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	body := fmt.Sprintf("Your one-time password (OTP) is: %s. This code is valid for the next 5 minutes.", code)
	if u.mailer == nil {
		slog.Info("mailer not configured; code available in logs", "email", email, "code", code)
		return nil
	}
	if err := u.mailer.Send(ctx, email, codeEmailSubject, body); err != nil {
		slog.Warn("code email delivery failed; code available in logs", "email", email, "code", code, "error", err)
	}
	return nil
}

// VerifyCode consumes the most recent active code for the email and
// establishes a session. The user row is created on first login; the session
// token is the same JWT issued by password login. When no active row matches,
// a second unfiltered lookup classifies the failure as already-used, expired,
// or invalid.
func (u *otpUsecase) VerifyCode(ctx context.Context, email, code string) (string, error) {
	rec, err := u.codes.FindLatestActive(ctx, email, code, u.now())
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			return "", u.classifyFailure(ctx, email, code)
		}
		return "", err
	}

	if err := u.codes.MarkUsed(ctx, rec.ID); err != nil {
		return "", err
	}

	user, err := u.ensureUser(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// classifyFailure distinguishes why no active row matched, so the client can
// show a specific message instead of a generic "invalid or expired".
func (u *otpUsecase) classifyFailure(ctx context.Context, email, code string) error {
	rec, err := u.codes.FindLatest(ctx, email, code)
	if err != nil {
		return ErrInvalidCode
	}
	if rec.Used {
		return ErrCodeAlreadyUsed
	}
	if rec.IsExpired(u.now()) {
		return ErrCodeExpired
	}
	return ErrInvalidCode
}

// ensureUser returns the user for the email, creating the row on first login.
// Creation is server-controlled: the client never chooses the account.
func (u *otpUsecase) ensureUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	created := &entity.User{Email: email}
	if err := u.users.Create(ctx, created); err != nil {
		// A concurrent first login may have created the row already.
		if errors.Is(err, ErrEmailAlreadyExists) {
			return u.users.FindByEmail(ctx, email)
		}
		return nil, err
	}
	return created, nil
}

// ensureNewsletterSubscription enrolls the email if it is not subscribed yet.
// Every failure is swallowed: the newsletter must never block a login.
func (u *otpUsecase) ensureNewsletterSubscription(ctx context.Context, email string) {
	if u.newsletter == nil {
		return
	}
	subscribed, err := u.newsletter.IsSubscribed(ctx, email)
	if err != nil {
		slog.Warn("newsletter status check failed", "email", email, "error", err)
		return
	}
	if subscribed {
		return
	}
	if err := u.newsletter.Subscribe(ctx, email); err != nil {
		slog.Warn("newsletter subscription failed", "email", email, "error", err)
	}
}
