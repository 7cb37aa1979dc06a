package service

import (
	"github.com/MKhiriev/resume-shortlister/internal/adapter"
	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/crypto"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/store"
	"github.com/MKhiriev/resume-shortlister/internal/validators"
	"github.com/MKhiriev/resume-shortlister/internal/workers"
)

// Adapters groups the outbound integrations the services depend on.
type Adapters struct {
	Mailer      adapter.Mailer
	FileStorage adapter.FileStorage
	Dispatcher  workers.ScoringDispatcher
}

type Services struct {
	IdentityService       IdentityService
	TokenAuthority        TokenAuthority
	JobDescriptionService JobDescriptionService
	ScoreService          ScoreService
	FileService           FileService
	AppInfoService        AppInfoService
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewStructValidator()
	tokens := NewTokenAuthority(cfg.App, logger)

	return &Services{
		IdentityService: NewIdentityService(
			storages.UserRepository,
			storages.PendingSignupStorage,
			adapters.Mailer,
			crypto.NewBcryptVault(0),
			tokens,
			cfg.App,
			logger,
		),
		TokenAuthority:        tokens,
		JobDescriptionService: NewJobDescriptionService(storages.JobDescriptionRepository, storages.AIResultRepository, adapters.Dispatcher, validator, logger),
		ScoreService:          NewScoreService(storages.JobDescriptionRepository, storages.AIResultRepository, validator, logger),
		FileService:           NewFileService(adapters.FileStorage, logger),
		AppInfoService:        appInfoService,
	}, nil
}
