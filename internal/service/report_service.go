package service

import (
	"fmt"

	"github.com/agrodat/property360/internal/model"
)

type ExcelGenerator interface {
	Generate(report model.FinancialReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.FinancialReport) ([]byte, error)
}

// ReportService builds the downloadable financial reports from the ledger.
type ReportService struct {
	state *State
	excel ExcelGenerator
	pdf   PDFGenerator
}

func NewReportService(state *State, excel ExcelGenerator, pdf PDFGenerator) *ReportService {
	return &ReportService{state: state, excel: excel, pdf: pdf}
}

// ReportFilter narrows the ledger extract; empty members match everything.
// Dates are inclusive ISO bounds.
type ReportFilter struct {
	StartDate string
	EndDate   string
	Direction string
	Category  string
}

type ReportResult struct {
	FileName string
	Content  []byte
}

func (s *ReportService) ExportExcel(filter ReportFilter) (*ReportResult, error) {
	report, err := s.buildReport(filter)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, err
	}
	return &ReportResult{FileName: buildFileName(report, "xlsx"), Content: content}, nil
}

func (s *ReportService) ExportPDF(filter ReportFilter) (*ReportResult, error) {
	report, err := s.buildReport(filter)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(report)
	if err != nil {
		return nil, err
	}
	return &ReportResult{FileName: buildFileName(report, "pdf"), Content: content}, nil
}

func (s *ReportService) buildReport(filter ReportFilter) (model.FinancialReport, error) {
	switch filter.Direction {
	case "", "all", string(model.DirectionInflow), string(model.DirectionOutflow):
	default:
		return model.FinancialReport{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, filter.Direction)
	}

	start := model.NormalizeDate(filter.StartDate)
	end := model.NormalizeDate(filter.EndDate)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	report := model.FinancialReport{
		PropertyName: s.state.Property.Name,
		PeriodStart:  start,
		PeriodEnd:    end,
		Direction:    filter.Direction,
		Category:     filter.Category,
	}

	for _, transaction := range s.state.Transactions {
		if start != "" && transaction.Date < start {
			continue
		}
		if end != "" && transaction.Date > end {
			continue
		}
		if filter.Direction != "" && filter.Direction != "all" && string(transaction.Direction) != filter.Direction {
			continue
		}
		if filter.Category != "" && transaction.Category != filter.Category {
			continue
		}

		report.Transactions = append(report.Transactions, transaction)
		if transaction.Direction == model.DirectionInflow {
			report.TotalIncome += transaction.Amount
		} else {
			report.TotalExpense += transaction.Amount
		}
	}
	report.Balance = report.TotalIncome - report.TotalExpense

	if len(report.Transactions) == 0 {
		return model.FinancialReport{}, fmt.Errorf("%w: no transactions for the selected filters", ErrNotFound)
	}
	return report, nil
}

func buildFileName(report model.FinancialReport, ext string) string {
	period := "completo"
	if report.PeriodStart != "" || report.PeriodEnd != "" {
		start := report.PeriodStart
		if start == "" {
			start = "inicio"
		}
		end := report.PeriodEnd
		if end == "" {
			end = "hoje"
		}
		period = start + "_" + end
	}
	return fmt.Sprintf("financeiro-%s.%s", period, ext)
}
