package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/tr"
)

// StoreUseCase управляет единственной строкой настроек магазина.
type StoreUseCase struct {
	settingsRepo StoreSettingsRepository
	trManager    tr.Manager
	defaultName  string
	now          Clock
}

func NewStoreUC(settingsRepo StoreSettingsRepository, trManager tr.Manager, defaultName string, now Clock) *StoreUseCase {
	if now == nil {
		now = time.Now
	}

	return &StoreUseCase{
		settingsRepo: settingsRepo,
		trManager:    trManager,
		defaultName:  defaultName,
		now:          now,
	}
}

// GetSettings возвращает nil, если настройки ещё ни разу не сохранялись.
func (s *StoreUseCase) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	const op = "StoreUseCase.GetSettings"

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return settings, nil
}

// UpdateSettings под блокировкой строки создаёт настройки при первом вызове
// и сливает изменения с существующими при последующих.
func (s *StoreUseCase) UpdateSettings(ctx context.Context, patch domain.StoreSettingsPatch) (*domain.StoreSettings, error) {
	const op = "StoreUseCase.UpdateSettings"

	var saved *domain.StoreSettings
	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.settingsRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if current == nil {
			current = domain.NewStoreSettings(s.defaultName)
		}

		merged := current.Apply(patch, s.now())
		saved, err = s.settingsRepo.Save(ctx, &merged)
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return saved, nil
}
