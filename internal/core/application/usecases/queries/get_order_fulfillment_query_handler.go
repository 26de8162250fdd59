package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/cancellation"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderFulfillmentQueryHandler joins an order with its active delivery,
// falling back to the most recent cancelled one when none is active.
//
// Visibility follows the command side: buyers and sellers see their own
// orders, a partner sees orders whose shown delivery is assigned to them,
// administrators see everything. Anything else reads as not found, so the
// caller cannot discover order ids.
type GetOrderFulfillmentQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderFulfillmentQueryHandler(db *gorm.DB) GetOrderFulfillmentQueryHandler {
	return GetOrderFulfillmentQueryHandler{db: db}
}

func (h GetOrderFulfillmentQueryHandler) Handle(
	ctx context.Context,
	query GetOrderFulfillmentQuery,
) (*GetOrderFulfillmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_id,
			o.seller_id,
			o.status,
			o.payment_status,
			o.final_amount,
			d.id,
			d.status,
			d.partner_id
		FROM orders o
		LEFT JOIN LATERAL (
			SELECT id, status, partner_id
			FROM deliveries
			WHERE deliveries.order_id = o.id
			ORDER BY status = 'cancelled', created_at DESC
			LIMIT 1
		) d ON TRUE
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var (
		orderID        uuid.UUID
		buyerID        int64
		sellerID       int64
		status         string
		paymentStatus  string
		finalAmount    decimal.Decimal
		deliveryID     uuid.NullUUID
		deliveryStatus sql.NullString
		partnerID      sql.NullInt64
	)
	err = rows.Scan(
		&orderID,
		&buyerID,
		&sellerID,
		&status,
		&paymentStatus,
		&finalAmount,
		&deliveryID,
		&deliveryStatus,
		&partnerID,
	)
	if err != nil {
		return nil, err
	}

	if !isVisible(query, buyerID, sellerID, partnerID) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return nil, err
	}
	response := &GetOrderFulfillmentQueryResponse{
		OrderID:       id,
		Status:        status,
		PaymentStatus: paymentStatus,
		FinalAmount:   finalAmount,
		Cancellable:   cancellation.CanCancel(status, cancellation.Order),
	}

	if deliveryID.Valid {
		did, idErr := kernel.UUIDFromBytes(deliveryID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.Delivery = &FulfillmentDelivery{
			ID:          did,
			Status:      deliveryStatus.String,
			Cancellable: cancellation.CanCancel(deliveryStatus.String, cancellation.Delivery),
		}
		if partnerID.Valid {
			p := kernel.AccountID(partnerID.Int64)
			response.Delivery.PartnerID = &p
		}
	}

	return response, rows.Err()
}

func isVisible(query GetOrderFulfillmentQuery, buyerID, sellerID int64, partnerID sql.NullInt64) bool {
	viewer := query.ViewerID().Int64()
	switch query.Role() {
	case account.Admin:
		return true
	case account.Buyer:
		return buyerID == viewer
	case account.Seller:
		return sellerID == viewer
	case account.DeliveryPartner:
		return partnerID.Valid && partnerID.Int64 == viewer
	default:
		return false
	}
}
