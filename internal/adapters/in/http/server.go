// Package http exposes the marketplace core over HTTP with echo. Handlers
// translate requests into commands and queries; every denial and rule
// violation leaves as an Error body whose code the errs package assigns.
package http

import (
	"context"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/application"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler is the shape shared by every command and query handler.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder         Handler[commands.CreateOrderCommand, *order.Order]
	TransitionOrder     Handler[commands.TransitionOrderCommand, *order.Order]
	CreateDelivery      Handler[commands.CreateDeliveryCommand, *delivery.Delivery]
	AssignPartner       Handler[commands.AssignPartnerCommand, *delivery.Delivery]
	ReassignPartner     Handler[commands.ReassignPartnerCommand, *delivery.Delivery]
	CancelDelivery      Handler[commands.CancelDeliveryCommand, *delivery.Delivery]
	AdvanceDelivery     Handler[commands.AdvanceDeliveryCommand, *delivery.Delivery]
	SubmitApplication   Handler[commands.SubmitApplicationCommand, *application.Application]
	DecideApplication   Handler[commands.DecideApplicationCommand, *application.Application]
	GetOrderFulfillment Handler[queries.GetOrderFulfillmentQuery, *queries.GetOrderFulfillmentQueryResponse]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers  Handlers
	accounts  AccountLoader
	gate      services.ApprovalGate
	jwtSecret []byte
	validate  *validator.Validate
}

func NewServer(handlers Handlers, accounts AccountLoader, jwtSecret string) *Server {
	return &Server{
		handlers:  handlers,
		accounts:  accounts,
		gate:      services.NewApprovalGate(),
		jwtSecret: []byte(jwtSecret),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register mounts every route on e. Groups carry no middleware: echo adds a
// catch-all to any group with middleware, which would answer unknown paths
// with 401 instead of 404. Authentication and the gate are attached per route.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	auth := s.authenticate()
	e.POST("/applications", s.SubmitApplication, auth, s.RequireAccount())
	e.GET("/orders/:id/fulfillment", s.GetOrderFulfillment, auth, s.RequireAccount())

	buyerOrders := []echo.MiddlewareFunc{auth, s.RequireRole(account.Buyer, "orders")}
	buyer := e.Group("/buyer")
	buyer.POST("/orders", s.CreateOrder, buyerOrders...)
	buyer.POST("/orders/:id/cancel", s.transitionTo(order.Cancelled), buyerOrders...)

	sellerOrders := []echo.MiddlewareFunc{auth, s.RequireRole(account.Seller, "orders")}
	sellerDeliveries := []echo.MiddlewareFunc{auth, s.RequireRole(account.Seller, "deliveries")}
	seller := e.Group("/seller")
	seller.GET("/:section", s.Section, auth, s.RequireRole(account.Seller, ""))
	seller.POST("/orders/:id/accept", s.transitionTo(order.Confirmed), sellerOrders...)
	seller.POST("/orders/:id/reject", s.transitionTo(order.Cancelled), sellerOrders...)
	seller.POST("/orders/:id/transition", s.TransitionOrder, sellerOrders...)
	seller.POST("/orders/:id/deliveries", s.CreateDelivery, sellerDeliveries...)
	seller.POST("/deliveries/:id/assign", s.AssignPartner, sellerDeliveries...)
	seller.POST("/deliveries/:id/reassign", s.ReassignPartner, sellerDeliveries...)
	seller.POST("/deliveries/:id/cancel", s.CancelDelivery, sellerDeliveries...)

	partnerDeliveries := []echo.MiddlewareFunc{auth, s.RequireRole(account.DeliveryPartner, "deliveries")}
	partner := e.Group("/partner")
	partner.POST("/deliveries/:id/advance", s.AdvanceDelivery, partnerDeliveries...)
	partner.POST("/deliveries/:id/cancel", s.CancelDelivery, partnerDeliveries...)

	adminOnly := []echo.MiddlewareFunc{auth, s.RequireRole(account.Admin, "admin")}
	admin := e.Group("/admin")
	admin.POST("/applications/:id/decision", s.DecideApplication, adminOnly...)
	admin.POST("/orders/:id/transition", s.TransitionOrder, adminOnly...)
	admin.POST("/deliveries/:id/assign", s.AssignPartner, adminOnly...)
	admin.POST("/deliveries/:id/reassign", s.ReassignPartner, adminOnly...)
	admin.POST("/deliveries/:id/cancel", s.CancelDelivery, adminOnly...)
}

func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// Section answers whether the gate lets the caller open a section. Rendering
// the section itself happens elsewhere.
func (s *Server) Section(c echo.Context) error {
	acc := currentAccount(c)
	return c.JSON(http.StatusOK, map[string]string{
		"section":        c.Param("section"),
		"approvalStatus": acc.ApprovalStatus().String(),
	})
}

// CreateOrder handles POST /buyer/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := s.bind(c, &req); err != nil {
		return writeError(c, err)
	}

	items, discount, err := req.toDomain()
	if err != nil {
		return writeError(c, err)
	}
	acc := currentAccount(c)
	cmd, err := commands.NewCreateOrderCommand(acc.ID(), kernel.AccountID(req.SellerID), req.AddressID, items, discount)
	if err != nil {
		return writeError(c, err)
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newOrderResponse(o))
}

// TransitionOrder handles the generic status change used by sellers and
// administrators.
func (s *Server) TransitionOrder(c echo.Context) error {
	var req TransitionOrderRequest
	if err := s.bind(c, &req); err != nil {
		return writeError(c, err)
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return s.transition(c, status)
}

// transitionTo backs the single-purpose accept, reject and cancel endpoints.
func (s *Server) transitionTo(status order.Status) echo.HandlerFunc {
	return func(c echo.Context) error {
		return s.transition(c, status)
	}
}

func (s *Server) transition(c echo.Context, status order.Status) error {
	orderID, err := uuidParam(c)
	if err != nil {
		return writeError(c, err)
	}
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewTransitionOrderCommand(orderID, status, actor)
	if err != nil {
		return writeError(c, err)
	}

	o, err := s.handlers.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponse(o))
}

// CreateDelivery handles POST /seller/orders/:id/deliveries.
func (s *Server) CreateDelivery(c echo.Context) error {
	orderID, err := uuidParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var req CreateDeliveryRequest
	if err = s.bind(c, &req); err != nil {
		return writeError(c, err)
	}

	fee := kernel.ZeroMoney()
	if req.Fee != "" {
		if fee, err = kernel.MoneyFromString(req.Fee); err != nil {
			return writeError(c, err)
		}
	}
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewCreateDeliveryCommand(orderID, req.Pickup.toDomain(), req.Drop.toDomain(), fee, actor)
	if err != nil {
		return writeError(c, err)
	}

	d, err := s.handlers.CreateDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newDeliveryResponse(d))
}

func (s *Server) AssignPartner(c echo.Context) error {
	deliveryID, partnerID, actor, err := s.assignment(c)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewAssignPartnerCommand(deliveryID, partnerID, actor)
	if err != nil {
		return writeError(c, err)
	}

	d, err := s.handlers.AssignPartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newDeliveryResponse(d))
}

func (s *Server) ReassignPartner(c echo.Context) error {
	deliveryID, partnerID, actor, err := s.assignment(c)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewReassignPartnerCommand(deliveryID, partnerID, actor)
	if err != nil {
		return writeError(c, err)
	}

	d, err := s.handlers.ReassignPartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newDeliveryResponse(d))
}

// assignment reads the inputs shared by assign and reassign.
func (s *Server) assignment(c echo.Context) (kernel.UUID, kernel.AccountID, commands.Actor, error) {
	deliveryID, err := uuidParam(c)
	if err != nil {
		return kernel.UUID{}, 0, commands.Actor{}, err
	}
	var req AssignPartnerRequest
	if err = s.bind(c, &req); err != nil {
		return kernel.UUID{}, 0, commands.Actor{}, err
	}
	actor, err := actorOf(c)
	if err != nil {
		return kernel.UUID{}, 0, commands.Actor{}, err
	}
	return deliveryID, kernel.AccountID(req.PartnerID), actor, nil
}

func (s *Server) CancelDelivery(c echo.Context) error {
	deliveryID, err := uuidParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var req CancelDeliveryRequest
	if err = s.bind(c, &req); err != nil {
		return writeError(c, err)
	}
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, req.Reason, actor)
	if err != nil {
		return writeError(c, err)
	}

	d, err := s.handlers.CancelDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newDeliveryResponse(d))
}

// AdvanceDelivery handles POST /partner/deliveries/:id/advance.
func (s *Server) AdvanceDelivery(c echo.Context) error {
	deliveryID, err := uuidParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var req AdvanceDeliveryRequest
	if err = s.bind(c, &req); err != nil {
		return writeError(c, err)
	}
	status, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return writeError(c, err)
	}
	actor, err := actorOf(c)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewAdvanceDeliveryCommand(deliveryID, status, actor)
	if err != nil {
		return writeError(c, err)
	}

	d, err := s.handlers.AdvanceDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newDeliveryResponse(d))
}

// SubmitApplication handles POST /applications for sellers and partners.
func (s *Server) SubmitApplication(c echo.Context) error {
	var req SubmitApplicationRequest
	if err := s.bind(c, &req); err != nil {
		return writeError(c, err)
	}
	kind, err := application.ParseKind(req.Kind)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewSubmitApplicationCommand(currentAccount(c).ID(), kind, req.details())
	if err != nil {
		return writeError(c, err)
	}

	a, err := s.handlers.SubmitApplication.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newApplicationResponse(a))
}

// DecideApplication handles POST /admin/applications/:id/decision.
func (s *Server) DecideApplication(c echo.Context) error {
	applicationID, err := uuidParam(c)
	if err != nil {
		return writeError(c, err)
	}
	var req DecideApplicationRequest
	if err = s.bind(c, &req); err != nil {
		return writeError(c, err)
	}
	decision, err := application.ParseDecision(req.Decision)
	if err != nil {
		return writeError(c, err)
	}
	cmd, err := commands.NewDecideApplicationCommand(applicationID, decision, currentAccount(c).ID(), req.Notes)
	if err != nil {
		return writeError(c, err)
	}

	a, err := s.handlers.DecideApplication.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newApplicationResponse(a))
}

// GetOrderFulfillment handles GET /orders/:id/fulfillment.
func (s *Server) GetOrderFulfillment(c echo.Context) error {
	orderID, err := uuidParam(c)
	if err != nil {
		return writeError(c, err)
	}
	acc := currentAccount(c)
	query, err := queries.NewGetOrderFulfillmentQuery(orderID, acc.ID(), acc.Role())
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.handlers.GetOrderFulfillment.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newFulfillmentResponse(view))
}

// bind decodes and validates a request body. Failures come back as
// ErrValueIsInvalid so they render as 400.
func (s *Server) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := s.validate.Struct(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", describeValidation(err))
	}
	return nil
}

func uuidParam(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
