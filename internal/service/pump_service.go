package service

import (
	"context"
	"time"

	"plant-hub-be/internal/apperror"
	"plant-hub-be/internal/pkg/logger"
	"plant-hub-be/pkg/events"
	"plant-hub-be/pkg/gpio"

	"github.com/patrickmn/go-cache"
)

const pumpCooldownKey = "pump:last-activation"

type IPumpService interface {
	Activate(ctx context.Context) (string, error)
}

type pumpService struct {
	pump             gpio.Pump
	cooldown         time.Duration
	guard            *cache.Cache
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewPumpService(
	pump gpio.Pump,
	cooldown time.Duration,
	publisherService IPublisherService,
	log logger.ILogger,
) IPumpService {
	return &pumpService{
		pump:             pump,
		cooldown:         cooldown,
		guard:            cache.New(cooldown, time.Minute),
		publisherService: publisherService,
		logger:           log,
	}
}

// Activate pulses the pump once. A cooldown entry guards against
// repeated triggers flooding the motor; Add fails while the previous
// entry is still live.
func (s *pumpService) Activate(ctx context.Context) (string, error) {
	if s.cooldown > 0 {
		if err := s.guard.Add(pumpCooldownKey, time.Now(), s.cooldown); err != nil {
			return "", apperror.Validation("pump is cooling down")
		}
	}

	if err := s.pump.Activate(ctx); err != nil {
		return "", apperror.Internal("failed to activate pump", err)
	}

	s.logger.Info("pump", "pump activated", nil)
	publishActivity(ctx, s.publisherService, s.logger, events.NewActivity(events.TypePumpActivated, map[string]interface{}{
		"cooldown_seconds": s.cooldown.Seconds(),
	}))

	return "roger roger", nil
}
