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

type SupplierRepo struct {
	*postgres.Postgres
}

func NewSupplierRepo(pgdb *postgres.Postgres) *SupplierRepo {
	return &SupplierRepo{pgdb}
}

func (r *SupplierRepo) CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (int64, error) {
	createSupplierSql, args, _ := r.SqlBuilder.
		Insert("supplier").
		Columns("name", "contact", "phone", "email", "active").
		Values(input.Name, input.Contact, input.Phone, input.Email, true).
		Suffix("RETURNING id").
		ToSql()

	var supplierId int64
	err := r.Database.QueryRowContext(ctx, createSupplierSql, args...).Scan(&supplierId)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, repo_errors.ErrAlreadyExists
		}

		return 0, err
	}

	return supplierId, nil
}

func (r *SupplierRepo) GetSupplierById(ctx context.Context, id int64) (*entity.Supplier, error) {
	getSupplierSql, args, _ := r.SqlBuilder.
		Select("id", "name", "contact", "phone", "email", "active", "created_at").
		From("supplier").
		Where("id = ?", id).
		ToSql()

	return r.scanSupplierRow(r.Database.QueryRowContext(ctx, getSupplierSql, args...))
}

func (r *SupplierRepo) GetSupplierByName(ctx context.Context, name string) (*entity.Supplier, error) {
	getSupplierSql, args, _ := r.SqlBuilder.
		Select("id", "name", "contact", "phone", "email", "active", "created_at").
		From("supplier").
		Where("name = ?", name).
		ToSql()

	return r.scanSupplierRow(r.Database.QueryRowContext(ctx, getSupplierSql, args...))
}

func (r *SupplierRepo) scanSupplierRow(row *sql.Row) (*entity.Supplier, error) {
	var supplier entity.Supplier
	var createdAt time.Time
	err := row.Scan(&supplier.Id, &supplier.Name, &supplier.Contact, &supplier.Phone,
		&supplier.Email, &supplier.Active, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	supplier.CreatedAt = createdAt.Format(time.RFC3339)

	return &supplier, nil
}

func (r *SupplierRepo) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return r.listSuppliers(ctx, false)
}

func (r *SupplierRepo) ListActiveSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return r.listSuppliers(ctx, true)
}

func (r *SupplierRepo) listSuppliers(ctx context.Context, activeOnly bool) ([]entity.Supplier, error) {
	builder := r.SqlBuilder.
		Select("id", "name", "contact", "phone", "email", "active", "created_at").
		From("supplier")

	if activeOnly {
		builder = builder.Where("active = ?", true)
	}

	listSql, args, _ := builder.OrderBy("name ASC").ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := make([]entity.Supplier, 0)
	for rows.Next() {
		var supplier entity.Supplier
		var createdAt time.Time
		if err := rows.Scan(&supplier.Id, &supplier.Name, &supplier.Contact, &supplier.Phone,
			&supplier.Email, &supplier.Active, &createdAt); err != nil {
			return suppliers, err
		}
		supplier.CreatedAt = createdAt.Format(time.RFC3339)
		suppliers = append(suppliers, supplier)
	}
	if err = rows.Err(); err != nil {
		return suppliers, err
	}

	return suppliers, nil
}

func (r *SupplierRepo) RenameSupplier(ctx context.Context, id int64, name string) error {
	renameSql, args, _ := r.SqlBuilder.
		Update("supplier").
		Set("name", name).
		Where("id = ?", id).
		ToSql()

	result, err := r.Database.ExecContext(ctx, renameSql, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return repo_errors.ErrAlreadyExists
		}

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

func (r *SupplierRepo) DeleteSupplier(ctx context.Context, id int64) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("supplier").
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

func (r *SupplierRepo) SupplierHasQuotations(ctx context.Context, id int64) (bool, error) {
	historySql, args, _ := r.SqlBuilder.
		Select("id").
		From("quotation").
		Where("supplier_id = ?", id).
		Limit(1).
		ToSql()

	var quotationId int64
	err := r.Database.QueryRowContext(ctx, historySql, args...).Scan(&quotationId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
