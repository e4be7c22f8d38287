package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-fatigue-api/infrastructure/repository"
	"github.com/vfg2006/creative-fatigue-api/internal/config"
)

// RetentionConfig representa a configuração do job de retenção de linhas
// diárias. O horizonte nunca deve ficar abaixo do período máximo de análise.
type RetentionConfig struct {
	CronSchedule string
	Days         int
	Enabled      bool
}

// RetentionService agenda e executa a limpeza de linhas diárias mais antigas
// que o horizonte de retenção.
type RetentionService struct {
	scheduler          *gocron.Scheduler
	config             RetentionConfig
	dailyRowRepo       repository.DailyRowRepository
	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewRetentionService cria uma nova instância do serviço de retenção.
func NewRetentionService(
	dailyRowRepo repository.DailyRowRepository,
	appConfig *config.Config,
) *RetentionService {
	retentionConfig := RetentionConfig{
		CronSchedule: appConfig.Retention.CronSchedule,
		Days:         appConfig.Retention.Days,
		Enabled:      appConfig.Retention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"days":          retentionConfig.Days,
		"enabled":       retentionConfig.Enabled,
	}).Info("Configuração do job de retenção carregada")

	return &RetentionService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       retentionConfig,
		dailyRowRepo: dailyRowRepo,
	}
}

// Start inicia o agendador e o amarra ao cancelamento do contexto.
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Job de retenção desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do job de retenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRetention(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar job de retenção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do job de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun dispara o job fora do agendamento.
func (s *RetentionService) TriggerManualRun() {
	go s.runRetention(context.Background())
}

// Status expõe o estado do job para a rota de status das crons.
func (s *RetentionService) Status() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"enabled": s.config.Enabled,
		"cron":    s.config.CronSchedule,
		"days":    s.config.Days,
		"running": s.running,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt.Format(time.RFC3339)
	}
	if !s.lastRunCompletedAt.IsZero() {
		status["last_run_completed_at"] = s.lastRunCompletedAt.Format(time.RFC3339)
	}

	return status
}

// runRetention executa uma passada de limpeza, com guarda contra execuções
// concorrentes.
func (s *RetentionService) runRetention(ctx context.Context) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Job de retenção já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	logrus.WithField("days", s.config.Days).Info("Iniciando limpeza de linhas diárias antigas")

	deleted, err := s.dailyRowRepo.DeleteOlderThan(ctx, s.config.Days)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar limpeza de linhas diárias")
		return
	}

	logrus.WithFields(logrus.Fields{
		"deleted": deleted,
		"days":    s.config.Days,
	}).Info("Limpeza de linhas diárias concluída")
}
