package service

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"shoestore_be/helper/format"
	"shoestore_be/model"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type PaidTransactions interface {
	Count(ctx context.Context) (int64, error)
	CountPaid(ctx context.Context) (int64, error)
	SumPaidGrandTotal(ctx context.Context) (decimal.Decimal, error)
}

type DashboardService struct {
	shoes, brands, categories, promos Counter
	transactions                      PaidTransactions
}

func NewDashboardService(shoes, brands, categories, promos Counter, transactions PaidTransactions) *DashboardService {
	return &DashboardService{
		shoes:        shoes,
		brands:       brands,
		categories:   categories,
		promos:       promos,
		transactions: transactions,
	}
}

func (s *DashboardService) Summary(ctx context.Context) model.Result[*model.DashboardSummary] {
	var sum model.DashboardSummary
	steps := []struct {
		name string
		dst  *int64
		fn   func(context.Context) (int64, error)
	}{
		{"shoes", &sum.Shoes, s.shoes.Count},
		{"brands", &sum.Brands, s.brands.Count},
		{"categories", &sum.Categories, s.categories.Count},
		{"promo codes", &sum.PromoCodes, s.promos.Count},
		{"transactions", &sum.Transactions, s.transactions.Count},
		{"paid transactions", &sum.PaidTransactions, s.transactions.CountPaid},
	}
	for _, step := range steps {
		n, err := step.fn(ctx)
		if err != nil {
			log.Printf("[ERROR] Failed to count %s: %v", step.name, err)
			return model.Fail[*model.DashboardSummary](model.KindInternal, "Failed to fetch dashboard")
		}
		*step.dst = n
	}

	revenue, err := s.transactions.SumPaidGrandTotal(ctx)
	if err != nil {
		log.Println("[ERROR] Failed to sum revenue:", err)
		return model.Fail[*model.DashboardSummary](model.KindInternal, "Failed to fetch dashboard")
	}
	sum.Revenue = revenue
	sum.RevenueText = format.FormatCurrency(revenue)
	return model.Ok(&sum)
}
