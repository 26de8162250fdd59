package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type autoAssigner interface {
	Handle(ctx context.Context, cmd commands.AutoAssignCommand) (*delivery.Delivery, error)
}

// AutoAssignJob periodically hands the oldest pending delivery to the best
// assignable partner.
type AutoAssignJob struct {
	handler  autoAssigner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewAutoAssignJob(handler autoAssigner, schedule string, logger *slog.Logger) *AutoAssignJob {
	return &AutoAssignJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "auto_assign_job"),
	}
}

func (j *AutoAssignJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto assign job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single assignment round. Nothing to assign and a lost
// race with a manual assignment are normal outcomes and are not logged as
// failures.
func (j *AutoAssignJob) RunOnce(ctx context.Context) {
	d, err := j.handler.Handle(ctx, commands.NewAutoAssignCommand())
	switch {
	case err == nil:
		j.logger.InfoContext(ctx, "Delivery auto-assigned",
			"delivery_id", d.ID().String(),
			"partner_id", d.PartnerID().String(),
		)
	case errors.Is(err, commands.ErrNoPendingDelivery),
		errors.Is(err, commands.ErrNoAssignablePartners):
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrPartnerUnavailable),
		errors.Is(err, errs.ErrOrderNotConfirmed):
		j.logger.DebugContext(ctx, "Auto assign lost a race", "error", err)
	default:
		j.logger.ErrorContext(ctx, "Auto assign job failed", "error", err)
	}
}

func (j *AutoAssignJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Auto assign job stopped")
}
