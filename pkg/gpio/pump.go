package gpio

import (
	"context"
	"fmt"
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

// Pump runs the water motor for one fixed-duration pulse.
type Pump interface {
	Activate(ctx context.Context) error
}

// MotorPump drives an H-bridge motor controller through two GPIO pins
// (BCM numbering).
type MotorPump struct {
	forward  rpio.Pin
	backward rpio.Pin
	pulse    time.Duration
}

// NewMotorPump opens the GPIO memory range and initializes both pins low.
func NewMotorPump(forwardPin, backwardPin int, pulse time.Duration) (*MotorPump, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpio: %w", err)
	}
	p := &MotorPump{
		forward:  rpio.Pin(forwardPin),
		backward: rpio.Pin(backwardPin),
		pulse:    pulse,
	}
	p.forward.Output()
	p.backward.Output()
	p.forward.Low()
	p.backward.Low()
	return p, nil
}

// Activate pulses the motor and always leaves both pins low afterwards,
// even when the context is cancelled mid-pulse.
func (p *MotorPump) Activate(ctx context.Context) error {
	p.backward.High()
	p.forward.Low()
	defer func() {
		p.backward.Low()
		p.forward.Low()
	}()

	select {
	case <-time.After(p.pulse):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *MotorPump) Close() error {
	return rpio.Close()
}

// NoopPump stands in where no motor hardware is attached (development,
// tests). It honors the pulse duration so callers see the same timing.
type NoopPump struct {
	pulse time.Duration
}

func NewNoopPump(pulse time.Duration) *NoopPump {
	return &NoopPump{pulse: pulse}
}

func (p *NoopPump) Activate(ctx context.Context) error {
	if p.pulse <= 0 {
		return nil
	}
	select {
	case <-time.After(p.pulse):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
