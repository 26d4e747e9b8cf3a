package pgdb

import (
	"context"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const storeSettingsColumns = `id, logo_url, icon_url, store_name, store_description, updated_at`

// StoreSettingsRepo хранит настройки магазина. Уникальная колонка singleton
// не даёт появиться второй строке.
type StoreSettingsRepo struct {
	pool *pgxpool.Pool
	conv converter.StoreSettingsConverter
}

func NewStoreSettingsRepo(pool *pgxpool.Pool, conv converter.StoreSettingsConverter) *StoreSettingsRepo {
	return &StoreSettingsRepo{pool: pool, conv: conv}
}

func (s *StoreSettingsRepo) Get(ctx context.Context) (*domain.StoreSettings, error) {
	query := `SELECT ` + storeSettingsColumns + ` FROM store_settings WHERE singleton`

	return s.get(ctx, tr.TxOrPool(ctx, s.pool), query)
}

// GetForUpdate блокирует строку настроек до конца транзакции.
func (s *StoreSettingsRepo) GetForUpdate(ctx context.Context) (*domain.StoreSettings, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT ` + storeSettingsColumns + ` FROM store_settings WHERE singleton FOR UPDATE`

	return s.get(ctx, tx, query)
}

// Save создаёт строку или перезаписывает существующую.
func (s *StoreSettingsRepo) Save(ctx context.Context, settings *domain.StoreSettings) (*domain.StoreSettings, error) {
	model := s.conv.ToModel(settings)
	query := `
		INSERT INTO store_settings (singleton, logo_url, icon_url, store_name, store_description, updated_at)
		VALUES (TRUE, $1, $2, $3, $4, $5)
		ON CONFLICT (singleton) DO UPDATE SET
			logo_url = EXCLUDED.logo_url,
			icon_url = EXCLUDED.icon_url,
			store_name = EXCLUDED.store_name,
			store_description = EXCLUDED.store_description,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + storeSettingsColumns

	saved, err := scanStoreSettings(tr.TxOrPool(ctx, s.pool).QueryRow(ctx, query,
		model.LogoURL,
		model.IconURL,
		model.StoreName,
		model.StoreDescription,
		model.UpdatedAt,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(saved), nil
}

func (s *StoreSettingsRepo) get(ctx context.Context, q tr.Querier, query string) (*domain.StoreSettings, error) {
	model, err := scanStoreSettings(q.QueryRow(ctx, query))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(model), nil
}

func scanStoreSettings(row pgx.Row) (*converter.StoreSettingsModel, error) {
	var m converter.StoreSettingsModel
	if err := row.Scan(&m.ID, &m.LogoURL, &m.IconURL, &m.StoreName, &m.StoreDescription, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
