package services

import (
	"sort"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// StatsService derives summary statistics over the product collection. Every
// call does a full scan; nothing is cached or maintained incrementally.
type StatsService struct {
	repo repositories.ProductRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo repositories.ProductRepository) *StatsService {
	return &StatsService{
		repo: repo,
	}
}

// GetProductStats computes the inventory summary. A product with zero stock
// counts only toward OutOfStock; LowStock requires stock > 0.
func (s *StatsService) GetProductStats() (*models.ProductStats, error) {
	products, err := s.repo.GetAll(nil)
	if err != nil {
		return nil, err
	}

	stats := &models.ProductStats{
		Total:      len(products),
		Categories: []string{},
	}

	seen := make(map[string]bool)
	for _, p := range products {
		if p.Stock == 0 {
			stats.OutOfStock++
		} else if p.Stock <= p.MinStock {
			stats.LowStock++
		}
		stats.TotalValue += p.Price * float64(p.Stock)

		if !seen[p.Category] {
			seen[p.Category] = true
			stats.Categories = append(stats.Categories, p.Category)
		}
	}
	sort.Strings(stats.Categories)

	return stats, nil
}
