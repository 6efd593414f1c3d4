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

type RequestRepo struct {
	*postgres.Postgres
}

func NewRequestRepo(pgdb *postgres.Postgres) *RequestRepo {
	return &RequestRepo{pgdb}
}

func (r *RequestRepo) CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (int64, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	createRequestSql, args, _ := r.SqlBuilder.
		Insert("request").
		Columns("product_id", "quantity", "status", "priority").
		Values(input.ProductId, input.Quantity, common.Pending, input.Priority).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var requestId int64
	err = tx.QueryRow(createRequestSql, args...).Scan(&requestId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return 0, e
		}

		return 0, err
	}

	for _, supplierId := range input.CandidateSupplierIds {
		createCandidateSql, args, _ := r.SqlBuilder.
			Insert("request_supplier").
			Columns("request_id", "supplier_id").
			Values(requestId, supplierId).
			RunWith(tx).
			ToSql()

		if _, err = tx.Exec(createCandidateSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return 0, e
			}

			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return requestId, nil
}

func (r *RequestRepo) GetRequestById(ctx context.Context, id int64) (*entity.Request, error) {
	getRequestSql, args, _ := r.SqlBuilder.
		Select("request.id, request.product_id, product.name, request.quantity, request.status, request.priority, request.created_at").
		From("request").
		InnerJoin("product on product.id = request.product_id").
		Where("request.id = ?", id).
		ToSql()

	var request entity.Request
	var createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getRequestSql, args...)
	err := row.Scan(&request.Id, &request.ProductId, &request.ProductName,
		&request.Quantity, &request.Status, &request.Priority, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	request.CreatedAt = createdAt.Format(time.RFC3339)

	candidates, err := r.getCandidateSupplierIds(ctx, []int64{request.Id})
	if err != nil {
		return nil, err
	}
	request.CandidateSupplierIds = candidates[request.Id]

	return &request, nil
}

func (r *RequestRepo) ListPendingRequests(ctx context.Context) ([]entity.Request, error) {
	listSql, args, _ := r.SqlBuilder.
		Select("request.id, request.product_id, product.name, request.quantity, request.status, request.priority, request.created_at").
		From("request").
		InnerJoin("product on product.id = request.product_id").
		Where("request.status = ?", common.Pending).
		OrderBy("request.created_at DESC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entity.Request, 0)
	requestIds := make([]int64, 0)
	for rows.Next() {
		var request entity.Request
		var createdAt time.Time
		if err := rows.Scan(&request.Id, &request.ProductId, &request.ProductName,
			&request.Quantity, &request.Status, &request.Priority, &createdAt); err != nil {
			return requests, err
		}
		request.CreatedAt = createdAt.Format(time.RFC3339)
		requests = append(requests, request)
		requestIds = append(requestIds, request.Id)
	}
	if err = rows.Err(); err != nil {
		return requests, err
	}

	if len(requestIds) == 0 {
		return requests, nil
	}

	candidates, err := r.getCandidateSupplierIds(ctx, requestIds)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		requests[i].CandidateSupplierIds = candidates[requests[i].Id]
	}

	return requests, nil
}

// getCandidateSupplierIds loads the association rows for the given requests.
// Candidates come back ordered ascending by supplier id so callers can rely
// on a stable evaluation order.
func (r *RequestRepo) getCandidateSupplierIds(ctx context.Context, requestIds []int64) (map[int64][]int64, error) {
	candidatesSql, args, _ := r.SqlBuilder.
		Select("request_id", "supplier_id").
		From("request_supplier").
		Where(squirrel.Eq{"request_id": requestIds}).
		OrderBy("supplier_id ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, candidatesSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make(map[int64][]int64)
	for rows.Next() {
		var requestId, supplierId int64
		if err := rows.Scan(&requestId, &supplierId); err != nil {
			return candidates, err
		}
		candidates[requestId] = append(candidates[requestId], supplierId)
	}
	if err = rows.Err(); err != nil {
		return candidates, err
	}

	return candidates, nil
}

func (r *RequestRepo) UpdateRequestStatus(ctx context.Context, id int64, status string) error {
	updateSql, args, _ := r.SqlBuilder.
		Update("request").
		Set("status", status).
		Where("id = ?", id).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateSql, args...)
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

// DeleteRequest removes the request and its association rows; the join table
// cascades on delete.
func (r *RequestRepo) DeleteRequest(ctx context.Context, id int64) error {
	deleteSql, args, _ := r.SqlBuilder.
		Delete("request").
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
