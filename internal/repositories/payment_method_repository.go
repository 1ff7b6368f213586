package repositories

import (
	"context"
	"errors"

	"vaultpay/internal/models"
)

var (
	// ErrPaymentMethodNotFound is returned when an id has no vault record.
	ErrPaymentMethodNotFound = errors.New("payment method not found")
)

// PaymentMethodRepository is the vault store. It owns the single-default
// invariant: after any mutation at most one record is default, and a
// non-empty store created through this interface always has one.
type PaymentMethodRepository interface {
	// List returns all records in creation order.
	List(ctx context.Context) ([]models.PaymentMethod, error)

	// Create persists a new record, assigning its id and timestamps.
	// A requested default clears the flag from every other record first;
	// the first record in an empty store becomes default regardless.
	Create(ctx context.Context, method *models.PaymentMethod) error

	// Find returns the record with the given id or ErrPaymentMethodNotFound.
	Find(ctx context.Context, id string) (*models.PaymentMethod, error)

	// Update applies nickname/default edits. Turning default on moves the
	// flag; turning it off is honored only on the record that holds it.
	Update(ctx context.Context, id string, input models.UpdatePaymentMethodInput) (*models.PaymentMethod, error)

	// SetDefault moves the default flag to the given record.
	SetDefault(ctx context.Context, id string) error

	// Count reports the number of stored records.
	Count(ctx context.Context) (int64, error)
}
