package cmd

import (
	"context"
	"log/slog"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) applicationUoWFactory() commands.ApplicationUoWFactory {
	return FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitApplicationCommandHandler() commands.SubmitApplicationCommandHandler {
	return commands.NewSubmitApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateDecideApplicationCommandHandler() commands.DecideApplicationCommandHandler {
	return commands.NewDecideApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	return commands.NewAssignPartnerCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateReassignPartnerCommandHandler() commands.ReassignPartnerCommandHandler {
	return commands.NewReassignPartnerCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	return commands.NewAdvanceDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAutoAssignCommandHandler() commands.AutoAssignCommandHandler {
	return commands.NewAutoAssignCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), notify.NewLogNotifier(c.logger))
}

func (c *CompositionRoot) CreateGetOrderFulfillmentQueryHandler() queries.GetOrderFulfillmentQueryHandler {
	return queries.NewGetOrderFulfillmentQueryHandler(c.gormDB)
}

// CreateAccountLoader reads accounts outside any transaction; the gate only
// needs the committed approval status.
func (c *CompositionRoot) CreateAccountLoader() httpadapter.AccountLoader {
	return func(ctx context.Context, id kernel.AccountID) (*account.Account, error) {
		return c.uowFactory.Create().AccountRepository().Get(ctx, id)
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		TransitionOrder:     c.CreateTransitionOrderCommandHandler(),
		CreateDelivery:      c.CreateCreateDeliveryCommandHandler(),
		AssignPartner:       c.CreateAssignPartnerCommandHandler(),
		ReassignPartner:     c.CreateReassignPartnerCommandHandler(),
		CancelDelivery:      c.CreateCancelDeliveryCommandHandler(),
		AdvanceDelivery:     c.CreateAdvanceDeliveryCommandHandler(),
		SubmitApplication:   c.CreateSubmitApplicationCommandHandler(),
		DecideApplication:   c.CreateDecideApplicationCommandHandler(),
		GetOrderFulfillment: c.CreateGetOrderFulfillmentQueryHandler(),
	}, c.CreateAccountLoader(), c.config.JWTSecret)
}

// CreateJobManager wires the background jobs. Config must already be valid.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	batchSize, _ := c.config.BatchSize()
	opts := jobs.Options{
		OutboxRelaySchedule: c.config.RelaySchedule(),
		OutboxBatchSize:     batchSize,
	}
	if enabled, _ := c.config.AutoAssign(); enabled {
		opts.AutoAssignSchedule = c.config.AssignSchedule()
	}
	return jobs.NewJobManager(
		c.CreateRelayOutboxCommandHandler(),
		c.CreateAutoAssignCommandHandler(),
		opts,
		c.logger,
	)
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
