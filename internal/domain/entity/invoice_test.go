package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoice_RecalculaTotalesYSaldo(t *testing.T) {
	f := &Invoice{
		Advance: decimal.NewFromInt(400000),
		Lines: []InvoiceLine{
			{Description: "Mural", Quantity: 2, UnitValue: decimal.NewFromInt(500000)},
		},
	}
	f.RecalculateTotals()

	assert.True(t, f.Subtotal.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, f.IVA.Equal(decimal.NewFromInt(190000)))
	assert.True(t, f.Total.Equal(decimal.NewFromInt(1190000)))
	assert.True(t, f.Balance.Equal(decimal.NewFromInt(790000)))
}

// Las líneas quedan numeradas 1..n sin huecos, sin importar lo que traiga el caller.
func TestInvoice_RenumeraLineas(t *testing.T) {
	f := &Invoice{
		Lines: []InvoiceLine{
			{Description: "a", Quantity: 1, UnitValue: decimal.NewFromInt(10), LineNumber: 7},
			{Description: "b", Quantity: 1, UnitValue: decimal.NewFromInt(20), LineNumber: 0},
			{Description: "c", Quantity: 1, UnitValue: decimal.NewFromInt(30), LineNumber: 7},
		},
	}
	f.RecalculateTotals()

	for i, line := range f.Lines {
		assert.Equal(t, i+1, line.LineNumber)
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "FAC-2026-000001", FormatInvoiceNumber(2026, 1))
	assert.Equal(t, "FAC-2026-000123", FormatInvoiceNumber(2026, 123))
	assert.Equal(t, "FAC-2027-999999", FormatInvoiceNumber(2027, 999999))
}
