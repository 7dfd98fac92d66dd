package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/lifecycle"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"
	"guardian/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	midpointPromptTitle = "Safety check-in"
	midpointPromptBody  = "%s left. Tap to confirm you're safe. If not, use SOS."
	endPromptTitle      = "Safety timer ending"
	endPromptBody       = "Confirm you're safe or trigger SOS if you need help."
)

type timerService struct {
	timerRepo  repository.TimerRepository
	prompts    service.PromptNotifier
	maxMinutes int
	logger     *slog.Logger

	// minute is the length of one timer minute; shortened in tests.
	minute time.Duration

	mu      sync.Mutex
	pending map[uuid.UUID][]*time.Timer
}

// NewTimerService creates the safety timer engine
func NewTimerService(
	timerRepo repository.TimerRepository,
	prompts service.PromptNotifier,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SafetyTimerEngine {
	return newTimerService(timerRepo, prompts, cfg.Timer.MaxDurationMinutes, time.Minute, logger)
}

func newTimerService(
	timerRepo repository.TimerRepository,
	prompts service.PromptNotifier,
	maxMinutes int,
	minute time.Duration,
	logger *slog.Logger,
) *timerService {
	return &timerService{
		timerRepo:  timerRepo,
		prompts:    prompts,
		maxMinutes: maxMinutes,
		minute:     minute,
		logger:     logger,
		pending:    make(map[uuid.UUID][]*time.Timer),
	}
}

// StartTimer persists an active timer and schedules its midpoint and end prompts
func (s *timerService) StartTimer(ctx context.Context, userID uuid.UUID, durationMinutes int) (*entity.SafetyTimer, error) {
	if durationMinutes < 1 || durationMinutes > s.maxMinutes {
		return nil, domainerrors.ErrInvalidDuration
	}

	running, err := s.timerRepo.FindActiveTimerByUser(ctx, userID)
	switch {
	case err == nil && running != nil:
		return nil, domainerrors.ErrTimerAlreadyActive.WithDetails(running.ID.String())
	case err != nil && !errors.Is(err, repository.ErrTimerNotFound):
		return nil, errors.Wrap(err, "failed to check running timer")
	}

	now := time.Now().UTC()
	timer := &entity.SafetyTimer{
		ID:              uuid.New(),
		UserID:          userID,
		DurationMinutes: durationMinutes,
		StartTime:       now,
		EndTime:         now.Add(time.Duration(durationMinutes) * time.Minute),
		Status:          entity.TimerStatusActive,
		Checkpoints:     []*entity.TimerCheckpoint{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.timerRepo.CreateTimer(ctx, timer); err != nil {
		return nil, errors.Wrap(err, "failed to create timer")
	}

	total := time.Duration(durationMinutes) * s.minute
	s.schedule(timer, total/2, midpointPromptTitle, fmt.Sprintf(midpointPromptBody, util.FormatDuration(total-total/2)))
	s.schedule(timer, total, endPromptTitle, endPromptBody)

	s.logger.InfoContext(ctx, "Safety timer started",
		slog.String("timer_id", timer.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("duration_minutes", durationMinutes),
	)

	return timer, nil
}

func (s *timerService) schedule(timer *entity.SafetyTimer, after time.Duration, title, body string) {
	prompt := &service.TimerPrompt{
		TimerID: timer.ID,
		UserID:  timer.UserID,
		Title:   title,
		Body:    body,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[timer.ID] = append(s.pending[timer.ID], time.AfterFunc(after, func() {
		s.firePrompt(prompt)
	}))
}

// firePrompt only shows a prompt; it never raises an alert on its own.
func (s *timerService) firePrompt(prompt *service.TimerPrompt) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.prompts.NotifyPrompt(ctx, prompt); err != nil {
		s.logger.WarnContext(ctx, "Failed to deliver timer prompt",
			slog.String("timer_id", prompt.TimerID.String()),
			slog.String("title", prompt.Title),
			slog.Any("error", err),
		)
	}
}

// dropPrompts cancels the prompts of a timer that have not fired yet.
func (s *timerService) dropPrompts(timerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.pending[timerID] {
		t.Stop()
	}
	delete(s.pending, timerID)
}

func (s *timerService) CancelTimer(ctx context.Context, userID, timerID uuid.UUID) error {
	return s.finish(ctx, userID, timerID, entity.TimerStatusCancelled)
}

func (s *timerService) CompleteTimer(ctx context.Context, userID, timerID uuid.UUID) error {
	return s.finish(ctx, userID, timerID, entity.TimerStatusCompleted)
}

func (s *timerService) finish(ctx context.Context, userID, timerID uuid.UUID, status entity.TimerStatus) error {
	if _, err := s.runningTimer(ctx, userID, timerID); err != nil {
		return err
	}

	if err := s.timerRepo.UpdateTimerStatus(ctx, timerID, status); err != nil {
		return mapTimerError(err)
	}

	s.dropPrompts(timerID)

	s.logger.InfoContext(ctx, "Safety timer stopped",
		slog.String("timer_id", timerID.String()),
		slog.String("status", string(status)),
	)

	return nil
}

// RecordCheckIn appends an ok checkpoint to a running timer
func (s *timerService) RecordCheckIn(ctx context.Context, userID, timerID uuid.UUID, location *entity.Location) error {
	if _, err := s.runningTimer(ctx, userID, timerID); err != nil {
		return err
	}

	checkpoint := &entity.TimerCheckpoint{
		Timestamp: time.Now().UTC(),
		Status:    entity.CheckpointStatusOK,
	}
	if location.IsValid() {
		loc := *location
		if loc.Timestamp.IsZero() {
			loc.Timestamp = checkpoint.Timestamp
		}
		checkpoint.Location = &loc
	}

	if err := s.timerRepo.AppendCheckpoint(ctx, timerID, checkpoint); err != nil {
		return mapTimerError(err)
	}

	return nil
}

// ExpireOverdue marks running timers past their end time as expired
func (s *timerService) ExpireOverdue(ctx context.Context) (int, error) {
	overdue, err := s.timerRepo.FindOverdueTimers(ctx, time.Now().UTC())
	if err != nil {
		return 0, errors.Wrap(err, "failed to find overdue timers")
	}

	expired := 0
	var firstErr error
	for _, timer := range overdue {
		err := s.timerRepo.UpdateTimerStatus(ctx, timer.ID, entity.TimerStatusExpired)
		switch {
		case err == nil:
			expired++
			s.dropPrompts(timer.ID)
		case errors.Is(err, repository.ErrTimerNotActive):
			s.dropPrompts(timer.ID)
		default:
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "failed to expire timer %s", timer.ID)
			}
		}
	}

	return expired, firstErr
}

// Stop drops every pending prompt
func (s *timerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timers := range s.pending {
		for _, t := range timers {
			t.Stop()
		}
		delete(s.pending, id)
	}
}

func (s *timerService) runningTimer(ctx context.Context, userID, timerID uuid.UUID) (*entity.SafetyTimer, error) {
	timer, err := s.timerRepo.FindTimerByID(ctx, timerID)
	if err != nil {
		return nil, mapTimerError(err)
	}
	if timer.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrNotAuthorized, "timer belongs to another user")
	}
	if timer.Status.IsTerminal() {
		return nil, errors.WithStack(domainerrors.ErrTimerNotActive)
	}

	return timer, nil
}

func mapTimerError(err error) error {
	switch {
	case errors.Is(err, repository.ErrTimerNotFound):
		return errors.WithStack(domainerrors.ErrTimerNotFound)
	case errors.Is(err, repository.ErrTimerNotActive):
		return errors.WithStack(domainerrors.ErrTimerNotActive)
	default:
		return errors.Wrap(err, "timer storage failed")
	}
}
