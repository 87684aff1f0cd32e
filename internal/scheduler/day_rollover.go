// Package scheduler contém o serviço de agendamento da verificação de
// virada de dia do snapshot.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/internal/config"
)

// DayRolloverVerifier é a operação de snapshot disparada pelo agendador.
type DayRolloverVerifier interface {
	VerifyDayRollover(now time.Time) (bool, error)
}

type DayRolloverConfig struct {
	CronSchedule string
	Enabled      bool
}

// DayRolloverService verifica periodicamente se o dia civil virou e, em
// caso positivo, captura o snapshot do novo dia. A verificação é barata e
// idempotente; a cadência por minuto é apenas uma rede de segurança, já que
// o boot também verifica inline.
type DayRolloverService struct {
	scheduler          *gocron.Scheduler
	verifier           DayRolloverVerifier
	config             DayRolloverConfig
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewDayRolloverService(verifier DayRolloverVerifier, cfg *config.Config) *DayRolloverService {
	rolloverConfig := DayRolloverConfig{
		CronSchedule: cfg.DayRollover.CronSchedule, // Default: a cada minuto
		Enabled:      cfg.DayRollover.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rolloverConfig.CronSchedule,
	}).Info("Configuração do agendador de virada de dia carregada")

	return &DayRolloverService{
		scheduler: scheduler,
		verifier:  verifier,
		config:    rolloverConfig,
	}
}

func (s *DayRolloverService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de verificação de virada de dia desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de verificação de virada de dia")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunVerification(); err != nil {
			logrus.WithError(err).Error("Erro na verificação de virada de dia")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de virada de dia: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de verificação de virada de dia")
		s.scheduler.Stop()
	}()

	return nil
}

// RunVerification executa uma verificação de virada de dia, garantindo que
// apenas uma execução aconteça por vez.
func (s *DayRolloverService) RunVerification() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Verificação de virada de dia já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	created, err := s.verifier.VerifyDayRollover(time.Now())
	if err != nil {
		return err
	}

	if created {
		logrus.Info("Virada de dia detectada, snapshot do novo dia capturado")
	}

	return nil
}

// TriggerManualSync dispara a verificação fora do agendamento (endpoint
// administrativo), sem bloquear o chamador.
func (s *DayRolloverService) TriggerManualSync() {
	logrus.Info("Verificação manual de virada de dia disparada")

	go func() {
		if err := s.RunVerification(); err != nil {
			logrus.WithError(err).Error("Erro na verificação manual de virada de dia")
		}
	}()
}
