package usecase

import (
	"time"

	"calendar-tool-service/internal/event"
	"calendar-tool-service/internal/event/repository"
	pkgLog "calendar-tool-service/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	cfg  event.Config
	repo repository.Repository
	now  func() time.Time
}

var _ event.UseCase = (*implUseCase)(nil)

// Option customizes the use case.
type Option func(*implUseCase)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New creates a new event UseCase. cfg is copied and never re-read.
func New(l pkgLog.Logger, cfg event.Config, repo repository.Repository, opts ...Option) *implUseCase {
	if cfg.CalendarID == "" {
		cfg.CalendarID = event.DefaultCalendarID
	}
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = event.DefaultTimezone
	}

	uc := &implUseCase{
		l:    l,
		cfg:  cfg,
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
