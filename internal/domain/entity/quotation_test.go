package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Los totales siempre se derivan de las líneas: subtotal = Σ(cantidad × precio),
// IVA = subtotal × 0.19, total = subtotal + IVA.
func TestQuotation_RecalculaTotales(t *testing.T) {
	q := &Quotation{
		Items: []QuotationItem{
			{Description: "Mural", Quantity: 2, UnitPrice: decimal.NewFromInt(500000)},
		},
	}
	q.RecalculateTotals()

	require.Len(t, q.Items, 1)
	assert.True(t, q.Items[0].Subtotal.Equal(decimal.NewFromInt(1000000)), "subtotal de línea: %s", q.Items[0].Subtotal)
	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(1000000)), "subtotal: %s", q.Subtotal)
	assert.True(t, q.Tax.Equal(decimal.NewFromInt(190000)), "IVA: %s", q.Tax)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(1190000)), "total: %s", q.Total)
}

func TestQuotation_RecalculaTotalesVariasLineas(t *testing.T) {
	q := &Quotation{
		Items: []QuotationItem{
			{Description: "Retrato", Quantity: 3, UnitPrice: decimal.NewFromInt(250000)},
			{Description: "Marco", Quantity: 1, UnitPrice: decimal.NewFromInt(80000)},
		},
	}
	q.RecalculateTotals()

	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(830000)))
	assert.True(t, q.Total.Equal(q.Subtotal.Add(q.Subtotal.Mul(IVARate))))
}

func TestQuotationState_DestinosValidos(t *testing.T) {
	assert.True(t, QuotationSent.ValidTarget())
	assert.True(t, QuotationApproved.ValidTarget())
	assert.True(t, QuotationRejected.ValidTarget())
	assert.False(t, QuotationDraft.ValidTarget())
	assert.False(t, QuotationState("ARCHIVADA").ValidTarget())
}

func TestQuotationState_Terminales(t *testing.T) {
	assert.True(t, QuotationApproved.Terminal())
	assert.True(t, QuotationRejected.Terminal())
	assert.False(t, QuotationDraft.Terminal())
	assert.False(t, QuotationSent.Terminal())
}
