package postgres

import (
	"context"
	"fmt"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
)

// ProductRepository реализует domain.ProductRepository.
// Каталог ведется вне сервиса, здесь только чтение.
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetProductsByIDs получает товары по списку ID.
// Отсутствующие товары в результат не попадают.
func (r *ProductRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Product, error) {
	products := make(map[uuid.UUID]*domain.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, price, is_active FROM products WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p := &domain.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.IsActive); err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products[p.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}

	return products, nil
}
