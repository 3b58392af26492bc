package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"bistro-pos/internal/models"
)

// TopSeller is one row of the best-sellers table.
type TopSeller struct {
	ItemName string  `json:"item_name"`
	Sold     int     `json:"sold"`
	Revenue  float64 `json:"revenue"`
}

// ReportData is the analytics payload for the sales report.
type ReportData struct {
	TotalRevenue float64        `json:"total_revenue"`
	TotalOrders  int            `json:"total_orders"`
	TopSelling   []TopSeller    `json:"top_selling"`
	RecentSales  []models.Order `json:"recent_sales"`
}

// GetSalesReport aggregates completed orders inside the requested range.
// ?start= and ?end= take YYYY-MM-DD; an open end defaults to now and an
// open start to the beginning of time.
func (h *Handler) GetSalesReport(c *gin.Context) {
	start := time.Time{}
	end := time.Now()

	if v := c.Query("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}
	if v := c.Query("end"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
			return
		}
		// Inclusive of the end day.
		end = parsed.Add(24 * time.Hour)
	}

	sales := h.Store.SalesBetween(start, end)

	data := ReportData{TotalOrders: len(sales), TopSelling: []TopSeller{}}
	byItem := make(map[string]*TopSeller)
	for _, order := range sales {
		data.TotalRevenue += order.Total
		for _, line := range order.Items {
			row, ok := byItem[line.MenuItem.Name]
			if !ok {
				row = &TopSeller{ItemName: line.MenuItem.Name}
				byItem[line.MenuItem.Name] = row
			}
			row.Sold += line.Quantity
			row.Revenue += line.FinalPrice * float64(line.Quantity)
		}
	}
	for _, row := range byItem {
		data.TopSelling = append(data.TopSelling, *row)
	}
	sort.Slice(data.TopSelling, func(i, j int) bool {
		return data.TopSelling[i].Sold > data.TopSelling[j].Sold
	})
	if len(data.TopSelling) > 5 {
		data.TopSelling = data.TopSelling[:5]
	}

	sort.Slice(sales, func(i, j int) bool {
		a, b := sales[i].CompletedDate, sales[j].CompletedDate
		if a == nil || b == nil {
			return b == nil
		}
		return a.After(*b)
	})
	if len(sales) > 10 {
		sales = sales[:10]
	}
	data.RecentSales = sales

	c.JSON(http.StatusOK, data)
}
