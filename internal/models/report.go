// internal/models/report.go
package models

// Read-only aggregates computed on query; neither is persisted.

type MonthlySummary struct {
	MonthYear           string   `json:"month_year"`
	TotalSales          *float64 `json:"total_sales"`
	TotalProfit         *float64 `json:"total_profit"`
	PCsSold             int64    `json:"pcs_sold"`
	AverageDaysHeld     *float64 `json:"average_days_held"`
	AverageProfitMargin *float64 `json:"average_profit_margin"`
}

type ProfitAnalysis struct {
	ComponentType         string   `json:"component_type"`
	AvgCost               *float64 `json:"avg_cost"`
	TotalUsage            int64    `json:"total_usage"`
	AvgProfitContribution *float64 `json:"avg_profit_contribution"`
}
