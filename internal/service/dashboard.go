package service

import (
	"context"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
)

type DashboardService struct {
	statsRepo repo.Stats
}

func NewDashboardService(repos *repo.Repositories) *DashboardService {
	return &DashboardService{statsRepo: repos.Stats}
}

func (s *DashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	return s.statsRepo.GetDashboardStats(ctx)
}
