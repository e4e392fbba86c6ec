package service

import (
	"github.com/xolan/devjournal/internal/stats"
	"github.com/xolan/devjournal/internal/storage"
)

// StatsService provides statistics operations
type StatsService struct {
	store *storage.Store
}

// NewStatsService creates a new StatsService
func NewStatsService(store *storage.Store) *StatsService {
	return &StatsService{store: store}
}

// Summary computes the statistics over the whole journal
func (s *StatsService) Summary() *StatsResult {
	return &StatsResult{Statistics: stats.CalculateStatistics(s.store.Load())}
}
