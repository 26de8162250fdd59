package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const maxItemQuantity = 999

// Item is one order line. UnitPrice is the price at checkout time, not a
// reference to the live catalogue price.
type Item struct {
	productID int64
	variantID *int64
	quantity  int
	unitPrice kernel.Money
}

func NewItem(productID int64, variantID *int64, quantity int, unitPrice kernel.Money) (Item, error) {
	var errList []error
	if productID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"product id", fmt.Errorf("%d is not greater than 0", productID)))
	}
	if variantID != nil && *variantID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"variant id", fmt.Errorf("%d is not greater than 0", *variantID)))
	}
	if quantity < 1 || quantity > maxItemQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity))
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		variantID: variantID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func (i Item) ProductID() int64 {
	return i.productID
}

func (i Item) VariantID() *int64 {
	return i.variantID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}
