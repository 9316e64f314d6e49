package services

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"gemstone-admin/models"
	"gemstone-admin/upstream"

	"github.com/redis/go-redis/v9"
)

const (
	analyticsCacheKey = "analytics_stats"
	analyticsCacheTTL = 5 * time.Minute
)

type AnalyticsService struct {
	api   *upstream.Client
	cache *redis.Client
}

func NewAnalyticsService(api *upstream.Client, cache *redis.Client) *AnalyticsService {
	return &AnalyticsService{api: api, cache: cache}
}

// GetStats fetches the analytics payload, served from cache when possible.
func (s *AnalyticsService) GetStats(ctx context.Context, sess upstream.Session) (*models.AnalyticsData, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, analyticsCacheKey).Result()
		if err == nil {
			var data models.AnalyticsData
			if json.Unmarshal([]byte(cached), &data) == nil {
				return &data, nil
			}
		}
	}

	data, err := s.api.GetAdminStats(ctx, sess)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(data); err == nil {
			s.cache.Set(ctx, analyticsCacheKey, string(raw), analyticsCacheTTL)
		}
	}
	return data, nil
}

// GrowthRate derives the period growth from the daily revenue series:
// (last - first) / first * 100, rounded to one decimal. Fewer than two data
// points or a zero first value yield 0.
func GrowthRate(stats []models.DailyStat) float64 {
	if len(stats) < 2 {
		return 0
	}

	sorted := append([]models.DailyStat{}, stats...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	first := sorted[0].Revenue
	last := sorted[len(sorted)-1].Revenue
	if first == 0 {
		return 0
	}
	return math.Round((last-first)/first*1000) / 10
}

// RevenueSeries shapes the daily stats into chart points for the sales chart.
func RevenueSeries(stats []models.DailyStat) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(stats))
	for _, s := range stats {
		points = append(points, models.ChartPoint{Label: s.Date, Value: s.Revenue})
	}
	return points
}

// OrderSeries shapes the daily order counts into chart points.
func OrderSeries(stats []models.DailyStat) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(stats))
	for _, s := range stats {
		points = append(points, models.ChartPoint{Label: s.Date, Value: float64(s.Orders)})
	}
	return points
}

// StatusSlices shapes the status breakdown into chart points for the
// category chart.
func StatusSlices(breakdown []models.StatusCount) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(breakdown))
	for _, b := range breakdown {
		points = append(points, models.ChartPoint{Label: b.Status, Value: float64(b.Count)})
	}
	return points
}
