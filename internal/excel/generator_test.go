package excel

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/agrodat/property360/internal/model"
)

func sampleReport() model.FinancialReport {
	return model.FinancialReport{
		PropertyName: "Fazenda Teste",
		PeriodStart:  "2024-02-01",
		PeriodEnd:    "2024-02-29",
		Direction:    "all",
		Transactions: []model.Transaction{
			{ID: 1, Description: "Venda soja", Category: "Venda", Amount: 1000, Date: "2024-02-10", Direction: model.DirectionInflow, Settlement: model.SettlementPaid},
			{ID: 2, Description: "Diesel", Category: "Insumo", Amount: 300, Date: "2024-02-15", Direction: model.DirectionOutflow, Settlement: model.SettlementPending},
		},
		TotalIncome:  1000,
		TotalExpense: 300,
		Balance:      700,
	}
}

func TestGenerateWorkbook(t *testing.T) {
	content, err := NewGenerator().Generate(sampleReport())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer file.Close()

	name, err := file.GetCellValue("Resumo", "B1")
	if err != nil {
		t.Fatalf("read summary cell: %v", err)
	}
	if name != "Fazenda Teste" {
		t.Fatalf("B1 = %q", name)
	}

	description, err := file.GetCellValue("Lançamentos", "B2")
	if err != nil {
		t.Fatalf("read detail cell: %v", err)
	}
	if description != "Venda soja" {
		t.Fatalf("B2 = %q", description)
	}

	direction, err := file.GetCellValue("Lançamentos", "E3")
	if err != nil {
		t.Fatalf("read direction cell: %v", err)
	}
	if direction != "Saída" {
		t.Fatalf("E3 = %q", direction)
	}
}
