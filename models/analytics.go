package models

// Overview carries the headline dashboard numbers.
type Overview struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	TotalProducts     int     `json:"totalProducts"`
	TotalBookingCalls int     `json:"totalBookingCalls"`
	WeeklyOrders      int     `json:"weeklyOrders"`
	MonthlyOrders     int     `json:"monthlyOrders"`
	AvgOrderValue     float64 `json:"avgOrderValue"`
}

// DailyStat is one day of the revenue time series.
type DailyStat struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// Growth carries the upstream period-over-period figures.
type Growth struct {
	Revenue float64 `json:"revenue"`
	Orders  float64 `json:"orders"`
}

// RecentOrder is one row of the recent-sales widget.
type RecentOrder struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer"`
	Email    string  `json:"email"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
	Date     string  `json:"date"`
}

// StatusCount is the aggregate count of entities grouped by status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// AnalyticsData is the payload of GET /orders/admin/stats.
type AnalyticsData struct {
	Overview        Overview      `json:"overview"`
	Growth          Growth        `json:"growth"`
	DailyStats      []DailyStat   `json:"dailyStats"`
	RecentOrders    []RecentOrder `json:"recentOrders"`
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
}

// ChartPoint is the shape chart components consume.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
