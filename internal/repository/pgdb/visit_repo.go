package pgdb

import (
	"context"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

type VisitRepo struct {
	pool *pgxpool.Pool
	conv converter.SiteVisitConverter
}

func NewVisitRepo(pool *pgxpool.Pool, conv converter.SiteVisitConverter) *VisitRepo {
	return &VisitRepo{pool: pool, conv: conv}
}

func (v *VisitRepo) Create(ctx context.Context, visit *domain.SiteVisit) (*domain.SiteVisit, error) {
	model := v.conv.ToModel(visit)
	query := `
		INSERT INTO site_visits (visit_date, page_viewed, ip_address, user_agent)
		VALUES ($1, $2, $3, $4)
		RETURNING id, visit_date, page_viewed, ip_address, user_agent
	`

	var created converter.SiteVisitModel
	if err := v.pool.QueryRow(ctx, query,
		model.VisitDate, model.PageViewed, model.IPAddress, model.UserAgent,
	).Scan(
		&created.ID, &created.VisitDate, &created.PageViewed, &created.IPAddress, &created.UserAgent,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(&created), nil
}

// List возвращает все визиты; агрегация выполняется на стороне сервиса.
func (v *VisitRepo) List(ctx context.Context) ([]domain.SiteVisit, error) {
	query := `
		SELECT id, visit_date, page_viewed, ip_address, user_agent
		FROM site_visits
		ORDER BY visit_date DESC
	`

	rows, err := v.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.SiteVisitModel, 0)
	for rows.Next() {
		var m converter.SiteVisitModel
		if err := rows.Scan(&m.ID, &m.VisitDate, &m.PageViewed, &m.IPAddress, &m.UserAgent); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToArrEntity(models), nil
}
