package service

import (
	"github.com/MKhiriev/go-novel-hub/internal/config"
	"github.com/MKhiriev/go-novel-hub/internal/crypto"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	NovelService   NovelService
	SocialService  SocialService
	AppInfoService AppInfoService
}

// NewServices builds every service on top of storages. Input validation is
// layered over the services that accept client data.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashKey)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, hasher, cfg.App, logger)),
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UserRepository, hasher, logger)),
		NovelService:   NewNovelValidationService().Wrap(NewNovelService(storages.NovelRepository, logger)),
		SocialService:  NewSocialValidationService().Wrap(NewSocialService(storages, logger)),
		AppInfoService: appInfoService,
	}, nil
}
