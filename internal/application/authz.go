package application

import (
	"context"
	"strings"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
)

var (
	errNoActor  = apperror.Unauthenticated("authentication required")
	errStaff    = apperror.Forbidden("staff privileges required")
	errNotOwner = apperror.Forbidden("you are not allowed to modify this resource")
)

// Services re-check capabilities even when the route gate already did so they
// stay safe when called from elsewhere.

func requireStaff(actor *entity.User) error {
	if actor == nil {
		return errNoActor
	}
	if !actor.IsStaff {
		return errStaff
	}
	return nil
}

func requireOwnerOrStaff(actor *entity.User, ownerID string) error {
	if actor == nil {
		return errNoActor
	}
	if !actor.CanModify(ownerID) {
		return errNotOwner
	}
	return nil
}

func requireOwner(actor *entity.User, ownerID string) error {
	if actor == nil {
		return errNoActor
	}
	if actor.ID != ownerID {
		return errNotOwner
	}
	return nil
}

type takenFunc func(ctx context.Context, value, excludeID string) (bool, error)

// ensureFree is the uniqueness pre-check; the storage constraint stays the
// final word when two writers race.
func ensureFree(ctx context.Context, taken takenFunc, value, excludeID, msg string) error {
	ok, err := taken(ctx, value, excludeID)
	if err != nil {
		return err
	}
	if ok {
		return apperror.Conflict(msg)
	}
	return nil
}

func required(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperror.Invalid(field + " is required")
	}
	return value, nil
}

func nonNegative(n int, field string) error {
	if n < 0 {
		return apperror.Invalid(field + " must be greater than or equal to 0")
	}
	return nil
}
