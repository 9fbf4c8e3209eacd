package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestOverdueInstallmentsService_MarkOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInstallmentRepo := mocks.NewMockInstallmentRepository(ctrl)

	service := NewOverdueInstallmentsService(mockInstallmentRepo, config.OverdueSweep{Enabled: true})
	fixedNow := time.Date(2024, 2, 16, 1, 0, 5, 0, time.UTC)
	service.now = func() time.Time { return fixedNow }

	today := time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setup         func()
		expected      int64
		expectedError bool
		validate      func(t *testing.T, status map[string]any)
	}{
		{
			name: "Marca parcelas vencidas até ontem",
			setup: func() {
				mockInstallmentRepo.EXPECT().MarkOverdue(gomock.Any(), today, fixedNow).Return(int64(4), nil)
			},
			expected: 4,
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, int64(4), status["lastMarkedInstallments"])
				assert.Equal(t, "", status["lastError"])
				assert.Equal(t, false, status["running"])
			},
		},
		{
			name: "Erro no banco fica registrado no status",
			setup: func() {
				mockInstallmentRepo.EXPECT().MarkOverdue(gomock.Any(), today, fixedNow).Return(int64(0), errors.New("database error"))
			},
			expectedError: true,
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "database error", status["lastError"])
				assert.Equal(t, int64(4), status["lastMarkedInstallments"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			affected, err := service.MarkOverdue(context.Background())
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, affected)
			}

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestOverdueInstallmentsService_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInstallmentRepo := mocks.NewMockInstallmentRepository(ctrl)
	service := NewOverdueInstallmentsService(mockInstallmentRepo, config.OverdueSweep{})
	service.running = true

	affected, err := service.MarkOverdue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestOverdueInstallmentsService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda", func(t *testing.T) {
		service := NewOverdueInstallmentsService(nil, config.OverdueSweep{Enabled: false})
		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Cron padrão", func(t *testing.T) {
		service := NewOverdueInstallmentsService(nil, config.OverdueSweep{Enabled: true})
		assert.Equal(t, defaultOverdueCron, service.GetStatus()["cronSchedule"])

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
	})

	t.Run("Cron inválido", func(t *testing.T) {
		service := NewOverdueInstallmentsService(nil, config.OverdueSweep{Enabled: true, CronSchedule: "todo dia"})
		assert.Error(t, service.Start(context.Background()))
	})
}
