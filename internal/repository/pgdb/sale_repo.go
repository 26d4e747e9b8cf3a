package pgdb

import (
	"context"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const saleColumns = `id, product_id, quantity, total_price, customer_name, customer_phone, sale_date`

type SaleRepo struct {
	pool *pgxpool.Pool
	conv converter.SaleConverter
}

func NewSaleRepo(pool *pgxpool.Pool, conv converter.SaleConverter) *SaleRepo {
	return &SaleRepo{pool: pool, conv: conv}
}

func (s *SaleRepo) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	model := s.conv.ToModel(sale)
	query := `
		INSERT INTO sales (product_id, quantity, total_price, customer_name, customer_phone, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + saleColumns

	var created converter.SaleModel
	err := tr.TxOrPool(ctx, s.pool).QueryRow(ctx, query,
		model.ProductID,
		model.Quantity,
		model.TotalPrice,
		model.CustomerName,
		model.CustomerPhone,
		model.SaleDate,
	).Scan(
		&created.ID, &created.ProductID, &created.Quantity, &created.TotalPrice,
		&created.CustomerName, &created.CustomerPhone, &created.SaleDate,
	)
	if err != nil {
		if postgresForeignKey(err) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&created), nil
}

func (s *SaleRepo) List(ctx context.Context) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC, id DESC`

	return s.query(ctx, query)
}

func (s *SaleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + ` FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		ORDER BY sale_date DESC, id DESC`

	return s.query(ctx, query, from, to)
}

func (s *SaleRepo) query(ctx context.Context, query string, args ...any) ([]domain.Sale, error) {
	rows, err := tr.TxOrPool(ctx, s.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.SaleModel, 0)
	for rows.Next() {
		var m converter.SaleModel
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Quantity, &m.TotalPrice,
			&m.CustomerName, &m.CustomerPhone, &m.SaleDate,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToArrEntity(models), nil
}
