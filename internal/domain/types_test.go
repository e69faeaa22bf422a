package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketNumber(t *testing.T) {
	assert.Equal(t, "Th1-000002", TicketNumber("h1", 2))
	assert.Equal(t, "T3f2c9a11-000150", TicketNumber("3f2c9a11-77aa-4bd4-9a55-1b0c8d2e1f00", 150))
}

func TestPrizeTables(t *testing.T) {
	tests := []struct {
		position int
		typ      string
		value    int64
		desc     string
	}{
		{1, "House", 450000, "Grand Prize: Modern Downtown Condo"},
		{2, "Cash", 10000, "Second Prize: $10,000 Cash"},
		{3, "Voucher", 1000, "Third Prize: $1,000 Shopping Voucher"},
		{4, "Other", 0, "Consolation Prize"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.typ, PrizeType(tt.position))
		assert.Equal(t, tt.value, PrizeValue(tt.position, 450000))
		assert.Equal(t, tt.desc, PrizeDescription(tt.position, "Modern Downtown Condo"))
	}
}

func TestHouseClone(t *testing.T) {
	h := House{ID: "h1", Images: []HouseImage{{URL: "a"}}}
	cp := h.Clone()
	cp.Images[0].URL = "b"

	assert.Equal(t, "a", h.Images[0].URL)
}

func TestPurchaseResults(t *testing.T) {
	r := PurchaseFailed(PurchaseSoldOut)
	assert.False(t, r.Success)
	assert.Equal(t, "No tickets remaining for this house", r.Message)
	assert.Nil(t, r.RemainingTickets)

	ok := PurchaseSucceeded(0, "Th1-000002")
	assert.True(t, ok.Success)
	assert.Empty(t, ok.Kind)
	if assert.NotNil(t, ok.RemainingTickets) {
		assert.Equal(t, 0, *ok.RemainingTickets)
	}
}
