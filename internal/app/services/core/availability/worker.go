package availability

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey ensures a single warming leader across instances.
const leaderLockKey = "availability:warm:leader"

// Worker periodically precomputes availability for every practitioner over the
// configured rolling window, so interactive queries inside that window are served
// from cache.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	schedules contracts.ScheduleAgendaClient
	usecase   contracts.AvailabilityUsecaseIface
	location  *time.Location
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, schedules contracts.ScheduleAgendaClient, usecase contracts.AvailabilityUsecaseIface, location *time.Location) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, schedules: schedules, usecase: usecase, location: location}
}

// Start begins the periodic loop with the configured cron spec, falling back to
// @hourly when the spec does not parse.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.WarmWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("availability.worker: failed to schedule with provided cron spec; falling back to @hourly", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels any in-flight run and waits for the cron to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, ttl)
	if err != nil {
		w.log.Warn("availability.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("availability.worker: leader lock not acquired; another instance is warming")
		return
	}
	defer w.locker.Unlock(ctx, leaderLockKey, token)

	practitionerIDs, err := w.schedules.ListPractitionerIDs(ctx)
	if err != nil {
		w.log.Warn("availability.worker: practitioner listing failed", zap.Error(err))
		return
	}

	// Cache keys include the appointment type, so a warm pass must cover the type
	// shapes interactive clients actually send; the untyped key alone would never
	// be hit by a typed query.
	appointmentTypes := w.cfg.App.WarmAppointmentTypes
	if len(appointmentTypes) == 0 {
		appointmentTypes = []string{""}
	}

	today := time.Now().In(w.location)
	for _, id := range practitionerIDs {
		for d := 0; d < w.cfg.App.WarmWindowDays; d++ {
			date := today.AddDate(0, 0, d).Format(constvars.DateLayout)
			for _, appointmentType := range appointmentTypes {
				if ctx.Err() != nil {
					return
				}
				w.warmQuery(ctx, id, date, appointmentType)
			}
		}
	}
}

func (w *Worker) warmQuery(ctx context.Context, practitionerID, date, appointmentType string) {
	input := contracts.AvailabilityQueryInput{
		PractitionerID:  practitionerID,
		Date:            date,
		AppointmentType: appointmentType,
	}
	_, err := w.usecase.Query(ctx, input)
	if err != nil && exceptions.IsHTTPErrRetryable(err) {
		w.log.Info("availability.worker: retrying warm query after transient failure",
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
		_, err = w.usecase.Query(ctx, input)
	}
	if err != nil {
		w.log.Warn("availability.worker: warm query failed",
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
	}
}
