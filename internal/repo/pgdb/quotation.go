package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"quotation-management-api/internal/common"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo/repo_errors"
	"quotation-management-api/pkg/postgres"
	"time"

	"github.com/Masterminds/squirrel"
)

type QuotationRepo struct {
	*postgres.Postgres
}

func NewQuotationRepo(pgdb *postgres.Postgres) *QuotationRepo {
	return &QuotationRepo{pgdb}
}

const quotationColumns = "quotation.id, quotation.price, quotation.quoted_at, " +
	"quotation.product_id, product.name, quotation.supplier_id, supplier.name, " +
	"quotation.request_id, quotation.status"

// InsertQuotation writes one price fact. When the quotation originates from a
// request, the request moves to Quoted inside the same transaction.
func (r *QuotationRepo) InsertQuotation(ctx context.Context, input *entity.CreateQuotationInput) (int64, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	createQuotationSql, args, _ := r.SqlBuilder.
		Insert("quotation").
		Columns("price", "quoted_at", "product_id", "supplier_id", "request_id", "status").
		Values(input.Price, time.Now(), input.ProductId, input.SupplierId, input.RequestId, common.Approved).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var quotationId int64
	err = tx.QueryRow(createQuotationSql, args...).Scan(&quotationId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return 0, e
		}

		return 0, err
	}

	if input.RequestId != nil {
		updateStatusSql, args, _ := r.SqlBuilder.
			Update("request").
			Set("status", common.Quoted).
			Where("id = ?", *input.RequestId).
			RunWith(tx).
			ToSql()

		if _, err = tx.Exec(updateStatusSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return 0, e
			}

			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return quotationId, nil
}

func (r *QuotationRepo) GetQuotationById(ctx context.Context, id int64) (*entity.Quotation, error) {
	getQuotationSql, args, _ := r.SqlBuilder.
		Select(quotationColumns).
		From("quotation").
		InnerJoin("product on product.id = quotation.product_id").
		InnerJoin("supplier on supplier.id = quotation.supplier_id").
		Where("quotation.id = ?", id).
		ToSql()

	var quotation entity.Quotation
	var quotedAt time.Time
	var requestId sql.NullInt64
	row := r.Database.QueryRowContext(ctx, getQuotationSql, args...)
	err := row.Scan(&quotation.Id, &quotation.Price, &quotedAt, &quotation.ProductId,
		&quotation.ProductName, &quotation.SupplierId, &quotation.SupplierName,
		&requestId, &quotation.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	quotation.Date = quotedAt.Format("2006-01-02")
	if requestId.Valid {
		quotation.RequestId = &requestId.Int64
	}

	return &quotation, nil
}

func (r *QuotationRepo) GetQuotationsForProduct(ctx context.Context, productId int64) ([]entity.Quotation, error) {
	return r.queryQuotations(ctx, r.selectQuotations().Where("quotation.product_id = ?", productId))
}

func (r *QuotationRepo) GetAllQuotations(ctx context.Context) ([]entity.Quotation, error) {
	return r.queryQuotations(ctx, r.selectQuotations())
}

func (r *QuotationRepo) ListQuotations(ctx context.Context, filter *entity.QuotationFilter) ([]entity.Quotation, error) {
	builder := r.selectQuotations()

	if filter.SupplierId != 0 {
		builder = builder.Where("quotation.supplier_id = ?", filter.SupplierId)
	}
	if filter.ProductId != 0 {
		builder = builder.Where("quotation.product_id = ?", filter.ProductId)
	}
	if filter.DateFrom != "" {
		builder = builder.Where("quotation.quoted_at >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		builder = builder.Where("quotation.quoted_at <= ?", filter.DateTo)
	}

	return r.queryQuotations(ctx, builder)
}

func (r *QuotationRepo) selectQuotations() squirrel.SelectBuilder {
	return r.SqlBuilder.
		Select(quotationColumns).
		From("quotation").
		InnerJoin("product on product.id = quotation.product_id").
		InnerJoin("supplier on supplier.id = quotation.supplier_id").
		OrderBy("quotation.quoted_at DESC, quotation.id DESC")
}

func (r *QuotationRepo) queryQuotations(ctx context.Context, builder squirrel.SelectBuilder) ([]entity.Quotation, error) {
	listSql, args, _ := builder.ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotations := make([]entity.Quotation, 0)
	for rows.Next() {
		var quotation entity.Quotation
		var quotedAt time.Time
		var requestId sql.NullInt64
		if err := rows.Scan(&quotation.Id, &quotation.Price, &quotedAt, &quotation.ProductId,
			&quotation.ProductName, &quotation.SupplierId, &quotation.SupplierName,
			&requestId, &quotation.Status); err != nil {
			return quotations, err
		}
		quotation.Date = quotedAt.Format("2006-01-02")
		if requestId.Valid {
			quotation.RequestId = &requestId.Int64
		}
		quotations = append(quotations, quotation)
	}
	if err = rows.Err(); err != nil {
		return quotations, err
	}

	return quotations, nil
}

// DeleteQuotation removes one price fact. When the quotation originated from
// a request, that request reopens to Pending inside the same transaction.
func (r *QuotationRepo) DeleteQuotation(ctx context.Context, id int64) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	getOriginSql, args, _ := r.SqlBuilder.
		Select("request_id").
		From("quotation").
		Where("id = ?", id).
		RunWith(tx).
		ToSql()

	var requestId sql.NullInt64
	err = tx.QueryRow(getOriginSql, args...).Scan(&requestId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}
		if errors.Is(err, sql.ErrNoRows) {
			return repo_errors.ErrNotFound
		}

		return err
	}

	deleteSql, args, _ := r.SqlBuilder.
		Delete("quotation").
		Where("id = ?", id).
		RunWith(tx).
		ToSql()

	if _, err = tx.Exec(deleteSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	if requestId.Valid {
		reopenSql, args, _ := r.SqlBuilder.
			Update("request").
			Set("status", common.Pending).
			Where("id = ?", requestId.Int64).
			RunWith(tx).
			ToSql()

		if _, err = tx.Exec(reopenSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return e
			}

			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}

// PersistAllocationBatch writes all winning quotations and marks every
// processed request in one transaction, so a failure partway through leaves
// no request Processed without its quotation.
func (r *QuotationRepo) PersistAllocationBatch(ctx context.Context, winners []entity.AllocationWinner, processedRequestIds []int64) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, winner := range winners {
		createQuotationSql, args, _ := r.SqlBuilder.
			Insert("quotation").
			Columns("price", "quoted_at", "product_id", "supplier_id", "request_id", "status").
			Values(winner.Price, time.Now(), winner.ProductId, winner.SupplierId, winner.RequestId, common.Approved).
			RunWith(tx).
			ToSql()

		if _, err = tx.Exec(createQuotationSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return e
			}

			return err
		}
	}

	if len(processedRequestIds) > 0 {
		updateStatusSql, args, _ := r.SqlBuilder.
			Update("request").
			Set("status", common.Processed).
			Where(squirrel.Eq{"id": processedRequestIds}).
			RunWith(tx).
			ToSql()

		if _, err = tx.Exec(updateStatusSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return e
			}

			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}
