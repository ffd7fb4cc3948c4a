package usecase

import (
	"context"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

type DashboardUseCase interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

type dashboardUseCase struct {
	statsRepo domain.StatsRepository
	log       *logrus.Logger
}

func NewDashboardUseCase(repo domain.StatsRepository, logger *logrus.Logger) DashboardUseCase {
	return &dashboardUseCase{statsRepo: repo, log: logger}
}

func (uc *dashboardUseCase) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := uc.statsRepo.Stats(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to compute dashboard stats: %v", err)
		return nil, err
	}
	return stats, nil
}
