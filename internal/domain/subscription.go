package domain

import (
	"context"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

type Subscription struct {
	ID             int
	UserID         int
	SubscriptionID string
	PlanID         *string
	Status         SubscriptionStatus
	Source         string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

type SubscriptionRepository interface {
	Activate(ctx context.Context, sub *Subscription) error
	Deactivate(ctx context.Context, subscriptionID string) error
	GetByUserId(ctx context.Context, userID int) ([]Subscription, error)
}
