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

const productColumns = `id, name, description, price, category, image, badge, available, stock, min_stock, created_at, updated_at`

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	return p.queryProducts(ctx, query)
}

func (p *ProductRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id`

	return p.queryProducts(ctx, query, category)
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	model, err := scanProduct(tr.TxOrPool(ctx, p.pool).QueryRow(ctx, query, id))
	if err != nil {
		if noRows(err) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// GetByIDs возвращает найденные продукты; отсутствующие id просто пропускаются.
func (p *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	return p.queryProducts(ctx, query, ids)
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (name, description, price, category, image, badge, available, stock, min_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns

	created, err := scanProduct(tr.TxOrPool(ctx, p.pool).QueryRow(ctx, query,
		model.Name,
		model.Description,
		model.Price,
		model.Category,
		model.Image,
		model.Badge,
		model.Available,
		model.Stock,
		model.MinStock,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(created), nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)
	query := `
		UPDATE products SET
			name = $2,
			description = $3,
			price = $4,
			category = $5,
			image = $6,
			badge = $7,
			available = $8,
			stock = $9,
			min_stock = $10,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	updated, err := scanProduct(tr.TxOrPool(ctx, p.pool).QueryRow(ctx, query,
		model.ID,
		model.Name,
		model.Description,
		model.Price,
		model.Category,
		model.Image,
		model.Badge,
		model.Available,
		model.Stock,
		model.MinStock,
	))
	if err != nil {
		if noRows(err) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(updated), nil
}

// UpdateStock перезаписывает остаток (last write wins).
func (p *ProductRepo) UpdateStock(ctx context.Context, id int64, stock int) (*domain.Product, error) {
	query := `
		UPDATE products SET stock = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	updated, err := scanProduct(tr.TxOrPool(ctx, p.pool).QueryRow(ctx, query, id, stock))
	if err != nil {
		if noRows(err) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(updated), nil
}

// Delete удаляет продукт. Продажи ссылаются на продукт без каскада,
// поэтому продукт с продажами удалить нельзя.
func (p *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := tr.TxOrPool(ctx, p.pool).Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if postgresForeignKey(err) {
			return false, e.ErrProductHasSales
		}
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

func (p *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := tr.TxOrPool(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		model, err := scanProduct(rows)
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

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Description, &model.Price, &model.Category,
		&model.Image, &model.Badge, &model.Available, &model.Stock, &model.MinStock,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}
