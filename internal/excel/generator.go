package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agrodat/property360/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.FinancialReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Resumo"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	detailSheet := "Lançamentos"
	file.NewSheet(detailSheet)
	if err := g.writeTransactions(file, detailSheet, report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.FinancialReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Propriedade")
	set("B1", report.PropertyName)
	set("A2", "Início do período")
	set("B2", orDash(report.PeriodStart))
	set("A3", "Fim do período")
	set("B3", orDash(report.PeriodEnd))
	set("A4", "Tipo")
	set("B4", directionLabel(report.Direction))
	set("A5", "Categoria")
	set("B5", orDash(report.Category))
	set("A6", "Lançamentos")
	set("B6", len(report.Transactions))

	set("A8", "Receita total")
	set("B8", report.TotalIncome)
	set("A9", "Despesa total")
	set("B9", report.TotalExpense)
	set("A10", "Saldo")
	set("B10", report.Balance)

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 32)
	return nil
}

func (g *Generator) writeTransactions(file *excelize.File, sheet string, report model.FinancialReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Data", "Descrição", "Categoria", "Contraparte", "Tipo", "Situação", "Valor"}
	for i, header := range headers {
		column, _ := excelize.ColumnNumberToName(i + 1)
		set(fmt.Sprintf("%s1", column), header)
	}

	for i, transaction := range report.Transactions {
		row := i + 2
		set(fmt.Sprintf("A%d", row), transaction.Date)
		set(fmt.Sprintf("B%d", row), transaction.Description)
		set(fmt.Sprintf("C%d", row), transaction.Category)
		set(fmt.Sprintf("D%d", row), transaction.Counterparty)
		set(fmt.Sprintf("E%d", row), directionLabel(string(transaction.Direction)))
		set(fmt.Sprintf("F%d", row), settlementLabel(transaction.Settlement))
		set(fmt.Sprintf("G%d", row), transaction.Amount)
	}

	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "B", "B", 40)
	_ = file.SetColWidth(sheet, "C", "D", 22)
	_ = file.SetColWidth(sheet, "E", "F", 12)
	_ = file.SetColWidth(sheet, "G", "G", 16)
	return nil
}

func directionLabel(direction string) string {
	switch strings.ToLower(direction) {
	case string(model.DirectionInflow):
		return "Entrada"
	case string(model.DirectionOutflow):
		return "Saída"
	default:
		return "Todas"
	}
}

func settlementLabel(settlement model.Settlement) string {
	if settlement == model.SettlementPaid {
		return "Pago"
	}
	return "Pendente"
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
