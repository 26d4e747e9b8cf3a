package pgdb

import (
	"context"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const promotionColumns = `id, title, description, discount_percentage, start_date, end_date, is_active, created_at`

type PromotionRepo struct {
	pool *pgxpool.Pool
	conv converter.PromotionConverter
}

func NewPromotionRepo(pool *pgxpool.Pool, conv converter.PromotionConverter) *PromotionRepo {
	return &PromotionRepo{pool: pool, conv: conv}
}

func (p *PromotionRepo) Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	model := p.conv.ToModel(promotion)
	query := `
		INSERT INTO promotions (title, description, discount_percentage, start_date, end_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + promotionColumns

	created, err := scanPromotion(p.pool.QueryRow(ctx, query,
		model.Title,
		model.Description,
		model.DiscountPercentage,
		model.StartDate,
		model.EndDate,
		model.IsActive,
		model.CreatedAt,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(created), nil
}

func (p *PromotionRepo) List(ctx context.Context) ([]domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions ORDER BY created_at DESC, id DESC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.PromotionModel, 0)
	for rows.Next() {
		model, err := scanPromotion(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, *model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *PromotionRepo) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`

	model, err := scanPromotion(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if noRows(err) {
			return nil, e.ErrPromotionNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *PromotionRepo) Update(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	model := p.conv.ToModel(promotion)
	query := `
		UPDATE promotions SET
			title = $2,
			description = $3,
			discount_percentage = $4,
			start_date = $5,
			end_date = $6,
			is_active = $7
		WHERE id = $1
		RETURNING ` + promotionColumns

	updated, err := scanPromotion(p.pool.QueryRow(ctx, query,
		model.ID,
		model.Title,
		model.Description,
		model.DiscountPercentage,
		model.StartDate,
		model.EndDate,
		model.IsActive,
	))
	if err != nil {
		if noRows(err) {
			return nil, e.ErrPromotionNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(updated), nil
}

func (p *PromotionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanPromotion(row pgx.Row) (*converter.PromotionModel, error) {
	var m converter.PromotionModel
	if err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.DiscountPercentage,
		&m.StartDate, &m.EndDate, &m.IsActive, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}
