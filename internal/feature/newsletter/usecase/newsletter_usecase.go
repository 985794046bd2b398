// Package usecase implements the newsletter business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSubscription is returned when the newsletter provider rejects the
	// request.
	ErrSubscription = errors.New("newsletter subscription failed")
	// ErrNotConfigured is returned when no provider is wired.
	ErrNotConfigured = errors.New("newsletter is not configured")
)

// Subscriber abstracts the newsletter provider.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Subscriber interface {
	// IsSubscribed reports whether the email has an active subscription.
	IsSubscribed(ctx context.Context, email string) (bool, error)

	// Subscribe creates a subscription for the email.
	Subscribe(ctx context.Context, email string) error
}

// NewsletterUsecase defines the newsletter operations.
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, email string) error
}

type newsletterUsecase struct {
	provider Subscriber
}

// NewNewsletterUsecase creates a NewsletterUsecase backed by the given provider.
func NewNewsletterUsecase(provider Subscriber) NewsletterUsecase {
	return &newsletterUsecase{provider: provider}
}

// Subscribe enrolls the email, skipping the provider call when an active
// subscription already exists. Re-subscribing is not an error: the endpoint
// is idempotent from the caller's point of view.
func (u *newsletterUsecase) Subscribe(ctx context.Context, email string) error {
	if u.provider == nil {
		return ErrNotConfigured
	}
	subscribed, err := u.provider.IsSubscribed(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubscription, err)
	}
	if subscribed {
		return nil
	}
	if err := u.provider.Subscribe(ctx, email); err != nil {
		return fmt.Errorf("%w: %v", ErrSubscription, err)
	}
	return nil
}
