package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"quotation-management-api/internal/common"
	"quotation-management-api/internal/entity"
	"quotation-management-api/pkg/postgres"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

type StatsRepo struct {
	*postgres.Postgres
}

func NewStatsRepo(pgdb *postgres.Postgres) *StatsRepo {
	return &StatsRepo{pgdb}
}

func (r *StatsRepo) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{
		TotalSpend:    decimal.Zero,
		AverageTicket: decimal.Zero,
		MinPrice:      decimal.Zero,
		MaxPrice:      decimal.Zero,
	}

	var err error
	if stats.ActiveProducts, err = r.count(ctx, r.SqlBuilder.Select("count(*)").From("product").Where("active = ?", true)); err != nil {
		return nil, err
	}
	if stats.ActiveSuppliers, err = r.count(ctx, r.SqlBuilder.Select("count(*)").From("supplier").Where("active = ?", true)); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = r.count(ctx, r.SqlBuilder.Select("count(*)").From("request").Where("status = ?", common.Pending)); err != nil {
		return nil, err
	}
	if stats.TotalQuotations, err = r.count(ctx, r.SqlBuilder.Select("count(*)").From("quotation")); err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	if stats.QuotationsToday, err = r.count(ctx, r.SqlBuilder.Select("count(*)").From("quotation").Where("quoted_at = ?", today)); err != nil {
		return nil, err
	}

	aggSql, args, _ := r.SqlBuilder.
		Select("coalesce(sum(price), 0)", "coalesce(min(price), 0)", "coalesce(max(price), 0)").
		From("quotation").
		ToSql()

	if err = r.Database.QueryRowContext(ctx, aggSql, args...).
		Scan(&stats.TotalSpend, &stats.MinPrice, &stats.MaxPrice); err != nil {
		return nil, err
	}

	if stats.TotalQuotations > 0 {
		stats.AverageTicket = stats.TotalSpend.
			Div(decimal.NewFromInt(int64(stats.TotalQuotations))).
			Round(2)
	}

	topSupplierSql, args, _ := r.SqlBuilder.
		Select("supplier.name", "count(quotation.id)").
		From("quotation").
		InnerJoin("supplier on supplier.id = quotation.supplier_id").
		GroupBy("supplier.name").
		OrderBy("count(quotation.id) DESC").
		Limit(1).
		ToSql()

	err = r.Database.QueryRowContext(ctx, topSupplierSql, args...).
		Scan(&stats.TopSupplierName, &stats.TopSupplierQuotes)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return stats, nil
}

func (r *StatsRepo) count(ctx context.Context, builder squirrel.SelectBuilder) (int, error) {
	countSql, args, _ := builder.ToSql()

	var n int
	if err := r.Database.QueryRowContext(ctx, countSql, args...).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
