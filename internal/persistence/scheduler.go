package persistence

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"qrd/internal/persistence/interfaces"
	"qrd/internal/providers"
	"qrd/internal/services"
	"qrd/internal/structures"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.HistoryServiceInterface
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	cron        *gron.Cron
	opsMu       sync.Mutex

	// revision of the store at the last successful save; skips no-op writes
	savedRevision uint64
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		rev := s.service.GetRevision()
		if rev == s.savedRevision {
			return
		}

		start := time.Now()
		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting history: %s", err)
			return
		}
		s.metrics.ObservePersistenceDuration(time.Since(start))
		s.savedRevision = rev
		s.logger.Infof(providers.TypeApp, "Persisted %d events to file %s", s.service.GetEventCount(), s.config.Persistence.FilePath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		return err
	}
	s.savedRevision = s.service.GetRevision()
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting scan history to file...")
	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting history: %s", err)
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	s.savedRevision = s.service.GetRevision()
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.HistoryServiceInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
		metrics:     metrics,
	}
}
