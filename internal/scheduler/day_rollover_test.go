package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ranking-api/internal/config"
	"github.com/vfg2006/sales-ranking-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

// verifierStub conta as verificações disparadas pelo agendador
type verifierStub struct {
	calls   int
	created bool
	err     error
}

func (v *verifierStub) VerifyDayRollover(_ time.Time) (bool, error) {
	v.calls++
	return v.created, v.err
}

func newRolloverConfig(enabled bool) *config.Config {
	return &config.Config{
		DayRollover: config.DayRollover{
			CronSchedule: "* * * * *",
			Enabled:      enabled,
		},
	}
}

func TestRunVerification(t *testing.T) {
	t.Run("executa a verificação de virada de dia", func(t *testing.T) {
		verifier := &verifierStub{created: true}
		service := NewDayRolloverService(verifier, newRolloverConfig(true))

		require.NoError(t, service.RunVerification())

		assert.Equal(t, 1, verifier.calls)
		assert.False(t, service.lastRunStartedAt.IsZero())
		assert.False(t, service.lastRunCompletedAt.IsZero())
	})

	t.Run("propaga erro do verificador", func(t *testing.T) {
		verifier := &verifierStub{err: errors.New("disco cheio")}
		service := NewDayRolloverService(verifier, newRolloverConfig(true))

		assert.Error(t, service.RunVerification())
	})

	t.Run("execuções consecutivas verificam de novo", func(t *testing.T) {
		verifier := &verifierStub{}
		service := NewDayRolloverService(verifier, newRolloverConfig(true))

		require.NoError(t, service.RunVerification())
		require.NoError(t, service.RunVerification())

		assert.Equal(t, 2, verifier.calls)
	})
}

func TestStart_DisabledByConfig(t *testing.T) {
	verifier := &verifierStub{}
	service := NewDayRolloverService(verifier, newRolloverConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))

	// Agendador desabilitado nunca chama o verificador
	assert.Equal(t, 0, verifier.calls)
}
