package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"plant-hub-be/internal/apperror"
	"plant-hub-be/internal/pkg/logger"
	"plant-hub-be/pkg/gpio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
}

func TestPumpActivateCooldown(t *testing.T) {
	svc := NewPumpService(gpio.NewNoopPump(0), 5*time.Second, nil, newTestLogger(t))
	ctx := context.Background()

	msg, err := svc.Activate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "roger roger", msg)

	_, err = svc.Activate(ctx)
	require.Error(t, err)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "pump is cooling down", appErr.Message)
}

func TestPumpActivateNoCooldown(t *testing.T) {
	svc := NewPumpService(gpio.NewNoopPump(0), 0, nil, newTestLogger(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		msg, err := svc.Activate(ctx)
		require.NoError(t, err)
		assert.Equal(t, "roger roger", msg)
	}
}
