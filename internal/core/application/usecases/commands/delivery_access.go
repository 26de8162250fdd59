package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// authorizeDelivery decides whether actor may act on d.
//
// Administrators always may. Sellers may when they own the parent order.
// The assigned partner may when partnerAllowed is set. Everyone else gets
// ErrRoleMismatch, and a seller or partner acting on someone else's delivery
// gets ErrObjectNotFound.
func authorizeDelivery(
	ctx context.Context,
	orders ports.OrderRepository,
	d *delivery.Delivery,
	actor Actor,
	partnerAllowed bool,
) error {
	return checkDeliveryAccess(d, actor, partnerAllowed, func() (*order.Order, error) {
		return orders.Get(ctx, d.OrderID())
	})
}

// authorizeLiveDelivery locks the parent order, authorizes actor like
// authorizeDelivery and then refuses work on a delivery whose order is no
// longer confirmed, processing or shipped (ErrOrderNotConfirmed). With
// finishing set, an order already marked delivered still lets the partner
// complete the run.
func authorizeLiveDelivery(
	ctx context.Context,
	orders ports.OrderRepository,
	d *delivery.Delivery,
	actor Actor,
	partnerAllowed bool,
	finishing bool,
) error {
	o, err := orders.GetForUpdate(ctx, d.OrderID())
	if err != nil {
		return err
	}

	err = checkDeliveryAccess(d, actor, partnerAllowed, func() (*order.Order, error) {
		return o, nil
	})
	if err != nil {
		return err
	}

	return requireLiveOrder(o, finishing)
}

func requireLiveOrder(o *order.Order, finishing bool) error {
	status := o.Status()
	if status.AllowsDelivery() || (finishing && status == order.Delivered) {
		return nil
	}
	return errs.NewRuleViolationError(
		errs.ErrOrderNotConfirmed,
		fmt.Sprintf("order %s is %s", o.ID(), status),
	)
}

func checkDeliveryAccess(
	d *delivery.Delivery,
	actor Actor,
	partnerAllowed bool,
	parentOrder func() (*order.Order, error),
) error {
	switch actor.Role() {
	case account.Admin:
		return nil
	case account.Seller:
		o, err := parentOrder()
		if err != nil {
			return err
		}
		if !o.IsVisibleTo(actor.ID(), actor.Role()) {
			return errs.NewObjectNotFoundError("delivery", d.ID().String())
		}
		return nil
	case account.DeliveryPartner:
		if !partnerAllowed {
			break
		}
		if !d.IsAssignedTo(actor.ID()) {
			return errs.NewObjectNotFoundError("delivery", d.ID().String())
		}
		return nil
	}

	return errs.NewRuleViolationError(
		errs.ErrRoleMismatch,
		fmt.Sprintf("%s may not manage deliveries", actor.Role()),
	)
}

// requireSellerOrAdmin guards operations only the selling side may start.
func requireSellerOrAdmin(actor Actor) error {
	if actor.Role() == account.Seller || actor.Role() == account.Admin {
		return nil
	}
	return errs.NewRuleViolationError(
		errs.ErrRoleMismatch,
		fmt.Sprintf("%s may not manage deliveries", actor.Role()),
	)
}
