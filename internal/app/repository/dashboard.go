package repository

import (
	"context"
	"fmt"

	"gamerental/internal/app/ds"
)

const dateBucketLayout = "02/01/2006"

// TopGame is one row of the most-rented ranking.
type TopGame struct {
	Game     string
	Platform string
	Total    int64
}

type DashboardData struct {
	Dates         []string
	Values        []float64
	OrderCount    int
	Total         float64
	Accounts      int64
	Licenses      int64
	Rented        int64
	Free          int64
	OccupancyRate float64
	Top10         []TopGame
}

func (r *Repository) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	orders, err := r.GetApprovedOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("approved orders: %w", err)
	}

	accounts, err := r.CountAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}

	total, rented, free, err := r.LicenseCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count licenses: %w", err)
	}

	top, err := r.TopRentedGames(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("top rented games: %w", err)
	}

	dates, values, sum := AggregateByDate(orders)
	return &DashboardData{
		Dates:         dates,
		Values:        values,
		OrderCount:    len(orders),
		Total:         sum,
		Accounts:      accounts,
		Licenses:      total,
		Rented:        rented,
		Free:          free,
		OccupancyRate: OccupancyRate(rented, total),
		Top10:         top,
	}, nil
}

// TopRentedGames ranks games by rented license count.
func (r *Repository) TopRentedGames(ctx context.Context, limit int) ([]TopGame, error) {
	top := []TopGame{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT g.name AS game, p.name AS platform, COUNT(l.id) AS total
		FROM licenses l
		INNER JOIN games g ON g.id = l.game_id
		INNER JOIN platforms p ON p.id = g.platform_id
		WHERE l.status = ?
		GROUP BY g.id, g.name, p.name
		ORDER BY total DESC, g.name ASC
		LIMIT ?`, ds.LicenseRented, limit).Scan(&top).Error
	return top, err
}

// AggregateByDate sums order values per calendar day in first-seen order.
func AggregateByDate(orders []ds.Order) (dates []string, values []float64, total float64) {
	dates = []string{}
	values = []float64{}
	index := map[string]int{}
	for _, o := range orders {
		day := o.CreatedAt.Format(dateBucketLayout)
		if i, ok := index[day]; ok {
			values[i] += o.Value
		} else {
			index[day] = len(dates)
			dates = append(dates, day)
			values = append(values, o.Value)
		}
		total += o.Value
	}
	return dates, values, total
}

// OccupancyRate is rented/total*100, and 0 when there are no licenses.
func OccupancyRate(rented, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(rented) / float64(total) * 100
}
