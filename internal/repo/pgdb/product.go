package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo/repo_errors"
	"quotation-management-api/pkg/postgres"
	"time"

	"github.com/lib/pq"
)

type ProductRepo struct {
	*postgres.Postgres
}

func NewProductRepo(pgdb *postgres.Postgres) *ProductRepo {
	return &ProductRepo{pgdb}
}

func (r *ProductRepo) CreateProduct(ctx context.Context, input *entity.CreateProductInput) (int64, error) {
	createProductSql, args, _ := r.SqlBuilder.
		Insert("product").
		Columns("id", "name", "category", "active").
		Values(input.Id, input.Name, input.Category, true).
		Suffix("RETURNING id").
		ToSql()

	var productId int64
	err := r.Database.QueryRowContext(ctx, createProductSql, args...).Scan(&productId)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, repo_errors.ErrAlreadyExists
		}

		return 0, err
	}

	return productId, nil
}

func (r *ProductRepo) GetProductById(ctx context.Context, id int64) (*entity.Product, error) {
	getProductSql, args, _ := r.SqlBuilder.
		Select("id", "name", "category", "active", "created_at").
		From("product").
		Where("id = ?", id).
		ToSql()

	var product entity.Product
	var createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getProductSql, args...)
	err := row.Scan(&product.Id, &product.Name, &product.Category, &product.Active, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	product.CreatedAt = createdAt.Format(time.RFC3339)

	return &product, nil
}

func (r *ProductRepo) ListProducts(ctx context.Context) ([]entity.Product, error) {
	listSql, args, _ := r.SqlBuilder.
		Select("id", "name", "category", "active", "created_at").
		From("product").
		OrderBy("name ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		var product entity.Product
		var createdAt time.Time
		if err := rows.Scan(&product.Id, &product.Name, &product.Category, &product.Active, &createdAt); err != nil {
			return products, err
		}
		product.CreatedAt = createdAt.Format(time.RFC3339)
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return products, err
	}

	return products, nil
}

func (r *ProductRepo) RenameProduct(ctx context.Context, id int64, name string) error {
	renameSql, args, _ := r.SqlBuilder.
		Update("product").
		Set("name", name).
		Where("id = ?", id).
		ToSql()

	result, err := r.Database.ExecContext(ctx, renameSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *ProductRepo) DeleteProduct(ctx context.Context, id int64) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("product").
		Where("id = ?", id).
		ToSql()

	result, err := r.Database.ExecContext(ctx, deleteSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

// ProductHasHistory reports whether any quotation or request references the
// product. Deletion is rejected while history exists.
func (r *ProductRepo) ProductHasHistory(ctx context.Context, id int64) (bool, error) {
	quotationSql, args, _ := r.SqlBuilder.
		Select("id").
		From("quotation").
		Where("product_id = ?", id).
		Limit(1).
		ToSql()

	var quotationId int64
	err := r.Database.QueryRowContext(ctx, quotationSql, args...).Scan(&quotationId)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	requestSql, args, _ := r.SqlBuilder.
		Select("id").
		From("request").
		Where("product_id = ?", id).
		Limit(1).
		ToSql()

	var requestId int64
	err = r.Database.QueryRowContext(ctx, requestSql, args...).Scan(&requestId)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	return false, nil
}
