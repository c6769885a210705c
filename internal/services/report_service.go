// internal/services/report_service.go
package services

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/buildflip/pc-inventory-backend/internal/models"
)

// ReportService computes the read-only aggregates. The grouping runs in
// Go rather than SQL so the same queries serve postgres and the sqlite
// test database; month formatting has no portable SQL spelling.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type monthlyAccumulator struct {
	sales       float64
	salesCount  int64
	profit      float64
	profitCount int64
	daysHeld    float64
	daysCount   int64
	margin      float64
	marginCount int64
	pcsSold     int64
}

// GetMonthlySummary groups sold PCs by sale month, most recent month
// first.
func (s *ReportService) GetMonthlySummary() ([]models.MonthlySummary, error) {
	var pcs []models.PC
	if err := s.db.Where("sale_date IS NOT NULL").Find(&pcs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sold pcs: %w", err)
	}

	byMonth := make(map[string]*monthlyAccumulator)
	for _, pc := range pcs {
		month := pc.SaleDate.Format("2006-01")
		acc, ok := byMonth[month]
		if !ok {
			acc = &monthlyAccumulator{}
			byMonth[month] = acc
		}

		acc.pcsSold++
		if pc.ActualSalePrice != nil {
			acc.sales += *pc.ActualSalePrice
			acc.salesCount++
		}
		if pc.Profit != nil {
			acc.profit += *pc.Profit
			acc.profitCount++
		}
		if pc.DaysHeld != nil {
			acc.daysHeld += float64(*pc.DaysHeld)
			acc.daysCount++
		}
		if pc.ProfitPercentage != nil {
			acc.margin += *pc.ProfitPercentage
			acc.marginCount++
		}
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	summary := make([]models.MonthlySummary, 0, len(months))
	for _, month := range months {
		acc := byMonth[month]
		row := models.MonthlySummary{
			MonthYear: month,
			PCsSold:   acc.pcsSold,
		}
		if acc.salesCount > 0 {
			total := acc.sales
			row.TotalSales = &total
		}
		if acc.profitCount > 0 {
			total := acc.profit
			row.TotalProfit = &total
		}
		if acc.daysCount > 0 {
			avg := acc.daysHeld / float64(acc.daysCount)
			row.AverageDaysHeld = &avg
		}
		if acc.marginCount > 0 {
			avg := acc.margin / float64(acc.marginCount)
			row.AverageProfitMargin = &avg
		}
		summary = append(summary, row)
	}

	return summary, nil
}

// GetProfitAnalysis groups component spend by slot, priciest slot
// first. avg_profit_contribution mirrors avg_cost, matching the report
// as it has always been served.
func (s *ReportService) GetProfitAnalysis() ([]models.ProfitAnalysis, error) {
	var components []models.Component
	if err := s.db.Find(&components).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch components: %w", err)
	}

	type slotAccumulator struct {
		cost  float64
		usage int64
	}
	bySlot := make(map[models.ComponentSlot]*slotAccumulator)
	for _, component := range components {
		acc, ok := bySlot[component.ComponentType]
		if !ok {
			acc = &slotAccumulator{}
			bySlot[component.ComponentType] = acc
		}
		acc.cost += component.Cost
		acc.usage++
	}

	analysis := make([]models.ProfitAnalysis, 0, len(bySlot))
	for slot, acc := range bySlot {
		avg := acc.cost / float64(acc.usage)
		contribution := avg
		analysis = append(analysis, models.ProfitAnalysis{
			ComponentType:         string(slot),
			AvgCost:               &avg,
			TotalUsage:            acc.usage,
			AvgProfitContribution: &contribution,
		})
	}

	sort.Slice(analysis, func(i, j int) bool {
		return *analysis[i].AvgCost > *analysis[j].AvgCost
	})

	return analysis, nil
}
