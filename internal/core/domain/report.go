package domain

import "github.com/shopspring/decimal"

// Stats is the admin dashboard summary from /admin/stats.
type Stats struct {
	TotalOrders   int             `json:"totalOrders"`
	PendingOrders int             `json:"pendingOrders"`
	TotalUsers    int             `json:"totalUsers"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// DayBucket is one bar of the orders-per-day report series.
type DayBucket struct {
	Day    string `json:"name"`
	Orders int    `json:"orders"`
}

// Analytics is the payload of /admin/reports/analytics: the dashboard
// summary plus a time series for charting.
type Analytics struct {
	TotalOrders  int             `json:"totalOrders"`
	TotalUsers   int             `json:"totalUsers"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	OrdersByDay  []DayBucket     `json:"ordersByDay"`
}
