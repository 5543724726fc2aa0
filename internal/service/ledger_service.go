package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrodat/property360/internal/model"
	"github.com/agrodat/property360/internal/store"
)

// LedgerService owns the transaction list. Aggregates are never stored;
// every read recomputes them from the ledger.
type LedgerService struct {
	state *State
	store Store
	log   zerolog.Logger
}

func NewLedgerService(state *State, st Store, log zerolog.Logger) *LedgerService {
	return &LedgerService{state: state, store: st, log: log}
}

func (s *LedgerService) Transactions() []model.Transaction {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.Transactions
}

// Save creates the transaction when it carries no id (newest first, as the
// ledger view lists them), otherwise replaces the matching one.
func (s *LedgerService) Save(transaction model.Transaction) (model.Transaction, error) {
	if transaction.Amount <= 0 {
		return model.Transaction{}, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	transaction.Date = model.NormalizeDate(transaction.Date)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if transaction.ID == 0 {
		transaction.ID = time.Now().UnixMilli()
		transactions := make([]model.Transaction, 0, len(s.state.Transactions)+1)
		transactions = append(transactions, transaction)
		transactions = append(transactions, s.state.Transactions...)
		s.state.Transactions = transactions
	} else {
		transactions := make([]model.Transaction, len(s.state.Transactions))
		copy(transactions, s.state.Transactions)
		replaced := false
		for i := range transactions {
			if transactions[i].ID == transaction.ID {
				transactions[i] = transaction
				replaced = true
				break
			}
		}
		if !replaced {
			return model.Transaction{}, fmt.Errorf("%w: transaction %d", ErrNotFound, transaction.ID)
		}
		s.state.Transactions = transactions
	}

	s.store.Save(store.KeyTransactions, s.state.Transactions)
	return transaction, nil
}

func (s *LedgerService) Delete(transactionID int64) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	transactions := make([]model.Transaction, 0, len(s.state.Transactions))
	found := false
	for _, transaction := range s.state.Transactions {
		if transaction.ID == transactionID {
			found = true
			continue
		}
		transactions = append(transactions, transaction)
	}
	if !found {
		return fmt.Errorf("%w: transaction %d", ErrNotFound, transactionID)
	}

	s.state.Transactions = transactions
	s.store.Save(store.KeyTransactions, s.state.Transactions)
	return nil
}

// Summary carries the current-month and all-time aggregates shown on the
// dashboard and finance cards.
type Summary struct {
	MonthIncome  float64 `json:"monthIncome"`
	MonthExpense float64 `json:"monthExpense"`
	MonthNet     float64 `json:"monthNet"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
	MarginPct    float64 `json:"marginPct"`
}

func (s *LedgerService) Summary(now time.Time) Summary {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var summary Summary
	for _, transaction := range s.state.Transactions {
		inflow := transaction.Direction == model.DirectionInflow
		if inflow {
			summary.TotalIncome += transaction.Amount
		} else {
			summary.TotalExpense += transaction.Amount
		}

		year, month, ok := monthOf(transaction.Date)
		if !ok || year != now.Year() || month != now.Month() {
			continue
		}
		if inflow {
			summary.MonthIncome += transaction.Amount
		} else {
			summary.MonthExpense += transaction.Amount
		}
	}

	summary.MonthNet = summary.MonthIncome - summary.MonthExpense
	summary.Balance = summary.TotalIncome - summary.TotalExpense
	if summary.TotalIncome > 0 {
		summary.MarginPct = summary.Balance / summary.TotalIncome * 100
	}
	return summary
}

// MonthPoint is one bar of the semester chart.
type MonthPoint struct {
	Label   string  `json:"label"`
	Year    int     `json:"year"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`

	month time.Month
}

var monthLabels = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// MonthlySeries buckets the ledger into the trailing six calendar months,
// current month included. Matching is by month+year equality, so months
// without movement still appear zeroed.
func (s *LedgerService) MonthlySeries(now time.Time) []MonthPoint {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	points := make([]MonthPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		points = append(points, MonthPoint{
			Label: monthLabels[anchor.Month()-1],
			Year:  anchor.Year(),
			month: anchor.Month(),
		})
	}

	for _, transaction := range s.state.Transactions {
		year, month, ok := monthOf(transaction.Date)
		if !ok {
			continue
		}
		for i := range points {
			if points[i].Year != year || points[i].month != month {
				continue
			}
			if transaction.Direction == model.DirectionInflow {
				points[i].Income += transaction.Amount
			} else {
				points[i].Expense += transaction.Amount
			}
			break
		}
	}
	return points
}

func monthOf(date string) (int, time.Month, bool) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, 0, false
	}
	return parsed.Year(), parsed.Month(), true
}
