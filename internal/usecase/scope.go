package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// buyerScope resolves the customer a BUYER actor is limited to. A buyer
// without a matching customer record sees an empty result set, signalled by
// empty=true, rather than an error.
func buyerScope(ctx context.Context, customers repository.CustomerRepository, actor model.UserPayload) (customerID *int64, empty bool, err error) {
	if actor.Role != model.RoleBuyer {
		return nil, false, nil
	}

	customer, err := customers.GetByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, true, nil
		}
		return nil, false, err
	}
	return &customer.ID, false, nil
}
