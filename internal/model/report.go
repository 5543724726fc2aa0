package model

// FinancialReport is the filtered ledger extract handed to the exporters.
type FinancialReport struct {
	PropertyName string
	PeriodStart  string
	PeriodEnd    string
	Direction    string
	Category     string
	Transactions []Transaction
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}
