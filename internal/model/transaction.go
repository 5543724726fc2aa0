package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Direction string

const (
	DirectionInflow  Direction = "inflow"
	DirectionOutflow Direction = "outflow"
)

type Settlement string

const (
	SettlementPaid    Settlement = "paid"
	SettlementPending Settlement = "pending"
)

type Transaction struct {
	ID           int64      `json:"id"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Counterparty string     `json:"counterparty"`
	Amount       float64    `json:"amount"`
	Date         string     `json:"date"`
	Direction    Direction  `json:"direction"`
	Settlement   Settlement `json:"settlement"`
}

type transactionDocument struct {
	ID           int64           `json:"id"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Counterparty string          `json:"counterparty"`
	Amount       json.RawMessage `json:"amount"`
	Date         string          `json:"date"`
	Direction    string          `json:"direction"`
	Settlement   string          `json:"settlement"`
}

// UnmarshalJSON decodes both the canonical shape and the legacy one: slash
// dates become ISO, string amounts become numbers and the old settlement
// vocabulary is folded into paid/pending. Running at decode time means every
// ingestion point (store load, request binding) gets the same normalization.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var doc transactionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*t = Transaction{
		ID:           doc.ID,
		Description:  doc.Description,
		Category:     doc.Category,
		Counterparty: doc.Counterparty,
		Amount:       coerceAmount(doc.Amount),
		Date:         NormalizeDate(doc.Date),
		Direction:    normalizeDirection(doc.Direction),
		Settlement:   normalizeSettlement(doc.Settlement),
	}
	return nil
}

// NormalizeDate rewrites DD/MM/YYYY to YYYY-MM-DD and passes anything else
// through unchanged. Idempotent on already-canonical dates.
func NormalizeDate(raw string) string {
	if !strings.Contains(raw, "/") {
		return raw
	}
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return raw
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

func coerceAmount(raw json.RawMessage) float64 {
	trimmed := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if trimmed == "" || trimmed == "null" {
		return 0
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return value
}

func normalizeDirection(raw string) Direction {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "inflow", "entrada":
		return DirectionInflow
	default:
		return DirectionOutflow
	}
}

func normalizeSettlement(raw string) Settlement {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paid", "completed", "concluido":
		return SettlementPaid
	default:
		return SettlementPending
	}
}
