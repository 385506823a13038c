// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/castnavi-api/infrastructure/repository"
	"github.com/vfg2006/castnavi-api/infrastructure/storage"
	"github.com/vfg2006/castnavi-api/internal/config"
)

var (
	ErrJanitorRunning = errors.New("limpeza de imagens já está em execução")
	// ErrUnmappedImageURL interrompe a limpeza: sem a chave não há como saber se o objeto está em uso
	ErrUnmappedImageURL = errors.New("URL de imagem de cast sem chave reconhecível")
)

// JanitorResult resume uma execução da limpeza de imagens
type JanitorResult struct {
	Scanned    int `json:"scanned"`
	Referenced int `json:"referenced"`
	Recent     int `json:"recent"`
	Deleted    int `json:"deleted"`
	Failed     int `json:"failed"`
}

// ImageJanitorService remove do bucket as imagens de cast que nenhuma cast
// referencia mais (upload sem salvar, imagem trocada, cast removida)
type ImageJanitorService struct {
	scheduler          *gocron.Scheduler
	castRepo           repository.CastRepository
	imageStore         storage.ImageStore
	config             config.ImageJanitor
	now                func() time.Time
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastResult         JanitorResult
}

func NewImageJanitorService(
	castRepo repository.CastRepository,
	imageStore storage.ImageStore,
	cfg config.ImageJanitor,
) *ImageJanitorService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"grace_period":  cfg.GracePeriod.String(),
	}).Info("Configuração da limpeza de imagens carregada")

	return &ImageJanitorService{
		scheduler:  gocron.NewScheduler(time.Local),
		castRepo:   castRepo,
		imageStore: imageStore,
		config:     cfg,
		now:        time.Now,
	}
}

func (s *ImageJanitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de imagens desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da limpeza de imagens")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Run(ctx); err != nil && !errors.Is(err, ErrJanitorRunning) {
			logrus.WithError(err).Error("Erro na limpeza de imagens")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de imagens: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da limpeza de imagens")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa uma limpeza completa. Execuções concorrentes retornam ErrJanitorRunning.
func (s *ImageJanitorService) Run(ctx context.Context) (JanitorResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de imagens já em andamento, ignorando")
		return JanitorResult{}, ErrJanitorRunning
	}
	s.syncRunning = true
	s.lastRunStartedAt = s.now()
	s.syncMutex.Unlock()

	result, err := s.cleanup(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastRunCompletedAt = s.now()
	if err == nil {
		s.lastResult = result
	}
	s.syncMutex.Unlock()

	if err != nil {
		return result, err
	}

	logrus.WithFields(logrus.Fields{
		"scanned":    result.Scanned,
		"referenced": result.Referenced,
		"recent":     result.Recent,
		"deleted":    result.Deleted,
		"failed":     result.Failed,
	}).Info("Limpeza de imagens concluída")

	return result, nil
}

func (s *ImageJanitorService) cleanup(ctx context.Context) (JanitorResult, error) {
	var result JanitorResult

	urls, err := s.castRepo.ListImageURLs(ctx)
	if err != nil {
		return result, fmt.Errorf("erro ao buscar imagens referenciadas: %w", err)
	}

	referenced := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		key, ok := storage.KeyFromURL(url)
		if ok {
			referenced[key] = struct{}{}
			continue
		}

		if storage.ReferencesCastImage(url) {
			return result, fmt.Errorf("%w: %s", ErrUnmappedImageURL, url)
		}

		logrus.WithField("url", url).Debug("Imagem externa ignorada na limpeza")
	}

	objects, err := s.imageStore.List(ctx, storage.CastImagesPrefix)
	if err != nil {
		return result, fmt.Errorf("erro ao listar imagens do bucket: %w", err)
	}

	cutoff := s.now().Add(-s.config.GracePeriod)

	for _, obj := range objects {
		result.Scanned++

		if _, ok := referenced[obj.Key]; ok {
			result.Referenced++
			continue
		}

		if obj.LastModified.After(cutoff) {
			result.Recent++
			continue
		}

		if err := s.imageStore.Delete(ctx, obj.Key); err != nil {
			logrus.WithError(err).WithField("key", obj.Key).Warn("Falha ao remover imagem órfã")
			result.Failed++
			continue
		}

		logrus.WithField("key", obj.Key).Debug("Imagem órfã removida")
		result.Deleted++
	}

	return result, nil
}

// TriggerManualSync inicia manualmente uma limpeza em background
func (s *ImageJanitorService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Limpeza de imagens já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando limpeza manual de imagens")
	go func() {
		if _, err := s.Run(context.Background()); err != nil && !errors.Is(err, ErrJanitorRunning) {
			logrus.WithError(err).Error("Erro na limpeza manual de imagens")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ImageJanitorService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"grace_period":          s.config.GracePeriod.String(),
		"running":               s.syncRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_result":           s.lastResult,
	}
}
