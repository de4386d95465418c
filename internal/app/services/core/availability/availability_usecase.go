package availability

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AvailabilityUsecase reconciles four agenda sources into one ordered list of
// bookable slots: recurring weekly windows, the backend slot list, existing
// appointments and date-level exceptions. Concurrent queries for the same
// (practitioner, date, type, duration) key are coalesced, and a per-key
// generation counter guarantees that when queries race, only the newest one may
// publish its result.
type AvailabilityUsecase struct {
	schedules    contracts.ScheduleAgendaClient
	slots        contracts.SlotAgendaClient
	exceptions   contracts.ExceptionAgendaClient
	appointments contracts.AppointmentAgendaClient
	cache        contracts.RedisRepository
	config       *config.InternalConfig
	logger       *zap.Logger
	location     *time.Location

	group singleflight.Group
	gens  sync.Map // query key -> *atomic.Uint64

	// now is swappable in tests.
	now func() time.Time
}

func NewAvailabilityUsecase(
	schedules contracts.ScheduleAgendaClient,
	slots contracts.SlotAgendaClient,
	exceptionClient contracts.ExceptionAgendaClient,
	appointments contracts.AppointmentAgendaClient,
	cache contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	location *time.Location,
) *AvailabilityUsecase {
	return &AvailabilityUsecase{
		schedules:    schedules,
		slots:        slots,
		exceptions:   exceptionClient,
		appointments: appointments,
		cache:        cache,
		config:       internalConfig,
		logger:       logger,
		location:     location,
		now:          time.Now,
	}
}

func queryKey(input contracts.AvailabilityQueryInput) string {
	return fmt.Sprintf("%s|%s|%s|%d", input.PractitionerID, input.Date, input.AppointmentType, input.DurationMinutes)
}

func cacheKey(input contracts.AvailabilityQueryInput) string {
	return fmt.Sprintf("availability:%s:%s:%s:%d", input.PractitionerID, input.Date, input.AppointmentType, input.DurationMinutes)
}

func (u *AvailabilityUsecase) Query(ctx context.Context, input contracts.AvailabilityQueryInput) (*contracts.AvailabilityQueryResult, error) {
	day, err := time.ParseInLocation(constvars.DateLayout, input.Date, u.location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	key := queryKey(input)
	gen := u.nextGeneration(key)

	if cached := u.readCache(ctx, input); cached != nil {
		return u.refreshCached(cached, day), nil
	}

	v, err, _ := u.group.Do(key, func() (interface{}, error) {
		return u.compute(ctx, input, day)
	})
	if err != nil {
		return nil, err
	}
	result := v.(*contracts.AvailabilityQueryResult)

	// Last write wins: a caller whose generation is no longer current was
	// overtaken by a newer query for the same key. Its result must neither be
	// shown nor cached, or a slow stale response would overwrite fresher state.
	if u.currentGeneration(key) != gen {
		stale := *result
		stale.Superseded = true
		return &stale, nil
	}

	u.writeCache(ctx, input, result)
	return result, nil
}

func (u *AvailabilityUsecase) compute(ctx context.Context, input contracts.AvailabilityQueryInput, day time.Time) (*contracts.AvailabilityQueryResult, error) {
	if blocked, reason := u.checkBlocked(ctx, input.PractitionerID, input.Date); blocked {
		return &contracts.AvailabilityQueryResult{
			Slots:       []contracts.CandidateSlot{},
			Blocked:     true,
			BlockReason: reason,
		}, nil
	}

	dayStart := atClock(day, 0, 0, u.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	// Every source below degrades independently. A backend slot failure yields an
	// empty list rather than an error, a schedule failure removes the window
	// restriction, and an appointment failure follows the configured fail mode.
	backend, err := u.slots.FindSlotsByPractitionerAndRange(ctx, input.PractitionerID, dayStart, dayEnd, input.AppointmentType)
	if err != nil {
		u.logger.Warn("backend slot fetch failed, continuing with empty slot list",
			zap.String(constvars.LoggingPractitionerIDKey, input.PractitionerID),
			zap.String(constvars.LoggingDateKey, input.Date),
			zap.Error(err),
		)
		backend = nil
	}

	rawWindows, err := u.schedules.FindWindowsByPractitionerID(ctx, input.PractitionerID)
	if err != nil {
		u.logger.Warn("schedule fetch failed, continuing without window restriction",
			zap.String(constvars.LoggingPractitionerIDKey, input.PractitionerID),
			zap.Error(err),
		)
		rawWindows = nil
	}
	matched := matchWindowsForDate(normalizeWindows(rawWindows, u.logger), day, u.location)

	var candidates []contracts.CandidateSlot
	var enforced *int
	if len(matched) > 0 {
		inferred := inferStepMinutes(backend, matched)
		var generated []generatedSlot
		for _, w := range matched {
			step := resolveStep(w, inferred, u.config.App.DefaultSlotMinutes)
			generated = append(generated, generateForWindow(w, backend, step)...)
		}
		fallback := inferred
		if fallback == 0 {
			fallback = u.config.App.DefaultSlotMinutes
		}
		candidates = mergeSlots(backend, generated, matched, fallback)
		enforced = resolveEnforcedDuration(matched)
	} else {
		// No window matches the date. The backend list alone is the truth; nothing
		// is generated and no window-based filtering applies.
		candidates = mergeSlots(backend, nil, nil, u.config.App.DefaultSlotMinutes)
	}

	candidates = filterPast(candidates, day, u.now(), u.location, u.config.App.LeadTimeBufferMinutes)

	booked, err := u.appointments.FindAppointmentsByPractitionerAndRange(ctx, input.PractitionerID, dayStart, dayEnd)
	if err != nil {
		if u.config.App.AppointmentsFailClosed {
			u.logger.Error("appointment fetch failed, refusing to offer slots",
				zap.String(constvars.LoggingPractitionerIDKey, input.PractitionerID),
				zap.String(constvars.LoggingDateKey, input.Date),
				zap.Error(err),
			)
			return &contracts.AvailabilityQueryResult{Slots: []contracts.CandidateSlot{}}, nil
		}
		u.logger.Warn("appointment fetch failed, continuing without booked filter",
			zap.String(constvars.LoggingPractitionerIDKey, input.PractitionerID),
			zap.String(constvars.LoggingDateKey, input.Date),
			zap.Error(err),
		)
		booked = nil
	}
	candidates = filterBooked(candidates, booked, u.location)

	duration := input.DurationMinutes
	if enforced != nil {
		duration = *enforced
	}
	if duration > 0 && len(matched) > 0 {
		candidates = filterDurationFit(candidates, matched, duration)
	}

	if candidates == nil {
		candidates = []contracts.CandidateSlot{}
	}
	return &contracts.AvailabilityQueryResult{
		Slots:                   candidates,
		EnforcedDurationMinutes: enforced,
	}, nil
}

func (u *AvailabilityUsecase) nextGeneration(key string) uint64 {
	v, _ := u.gens.LoadOrStore(key, new(atomic.Uint64))
	return v.(*atomic.Uint64).Add(1)
}

func (u *AvailabilityUsecase) currentGeneration(key string) uint64 {
	v, ok := u.gens.Load(key)
	if !ok {
		return 0
	}
	return v.(*atomic.Uint64).Load()
}

// refreshCached re-applies the time-of-day cutoff to a cached result. A cached
// same-day offer goes stale as the clock advances within the TTL; a slot that has
// fallen behind now plus the lead buffer must not resurface from the cache.
func (u *AvailabilityUsecase) refreshCached(result *contracts.AvailabilityQueryResult, day time.Time) *contracts.AvailabilityQueryResult {
	if result.Blocked {
		return result
	}
	result.Slots = filterPast(result.Slots, day, u.now(), u.location, u.config.App.LeadTimeBufferMinutes)
	if result.Slots == nil {
		result.Slots = []contracts.CandidateSlot{}
	}
	return result
}

func (u *AvailabilityUsecase) readCache(ctx context.Context, input contracts.AvailabilityQueryInput) *contracts.AvailabilityQueryResult {
	raw, err := u.cache.Get(ctx, cacheKey(input))
	if err != nil || raw == "" {
		return nil
	}
	var result contracts.AvailabilityQueryResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		u.logger.Warn("discarding undecodable cached availability",
			zap.String(constvars.LoggingRedisKey, cacheKey(input)),
			zap.Error(err),
		)
		return nil
	}
	return &result
}

func (u *AvailabilityUsecase) writeCache(ctx context.Context, input contracts.AvailabilityQueryInput, result *contracts.AvailabilityQueryResult) {
	ttl := time.Duration(u.config.App.AvailabilityCacheTTLSec) * time.Second
	if ttl <= 0 {
		return
	}
	if err := u.cache.Set(ctx, cacheKey(input), result, ttl); err != nil {
		u.logger.Warn("failed to cache availability result",
			zap.String(constvars.LoggingRedisKey, cacheKey(input)),
			zap.Error(err),
		)
	}
}
