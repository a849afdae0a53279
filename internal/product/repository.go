package product

import (
	"context"
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"commerce-api/pkg/cerror"
)

type Repository interface {
	FindProducts(ctx context.Context, limit, offset int) ([]Product, error)
	CountProducts(ctx context.Context) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) FindProducts(ctx context.Context, limit, offset int) ([]Product, error) {
	query := `
		SELECT product_id, name, description, price, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while getting products",
			zap.Error(err),
		)
	}
	defer rows.Close()

	products := make([]Product, 0, limit)
	for rows.Next() {
		var item Product
		err = rows.Scan(
			&item.ProductId,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, cerror.NewError(
				fiber.StatusInternalServerError,
				"error occurred while scanning product row",
				zap.Error(err),
			)
		}

		products = append(products, item)
	}

	if err = rows.Err(); err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while iterating product rows",
			zap.Error(err),
		)
	}

	return products, nil
}

func (r *repository) CountProducts(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM products`

	var total int64
	err := r.db.QueryRowContext(ctx, query).Scan(&total)
	if err != nil {
		return 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while counting products",
			zap.Error(err),
		)
	}

	return total, nil
}
