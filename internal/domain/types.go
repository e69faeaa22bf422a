package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type HouseStatus string

const (
	HouseActive   HouseStatus = "active"
	HouseUpcoming HouseStatus = "upcoming"
	HouseEnded    HouseStatus = "ended"
)

func (s HouseStatus) Valid() bool {
	switch s {
	case HouseActive, HouseUpcoming, HouseEnded:
		return true
	}
	return false
}

type HouseImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type House struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Location      string       `json:"location"`
	Images        []HouseImage `json:"images"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	SquareFeet    int          `json:"sqft"`
	Price         int64        `json:"price"`
	TicketPrice   int64        `json:"ticket_price"`
	TotalTickets  int          `json:"total_tickets"`
	SoldTickets   int          `json:"sold_tickets"`
	LotteryEndsAt time.Time    `json:"lottery_ends_at"`
	Status        HouseStatus  `json:"status"`
}

// Remaining is the number of tickets still on sale.
func (h House) Remaining() int {
	return h.TotalTickets - h.SoldTickets
}

// Clone returns a copy that shares no slices with h.
func (h House) Clone() House {
	cp := h
	if h.Images != nil {
		cp.Images = make([]HouseImage, len(h.Images))
		copy(cp.Images, h.Images)
	}
	return cp
}

type PurchaseErrorKind string

const (
	PurchaseNotFound        PurchaseErrorKind = "not_found"
	PurchaseLotteryInactive PurchaseErrorKind = "lottery_inactive"
	PurchaseSoldOut         PurchaseErrorKind = "sold_out"
	PurchaseUnavailable     PurchaseErrorKind = "unavailable"
)

const PurchaseSucceededMessage = "Ticket purchased successfully"

// Message returns the default English text for the kind.
func (k PurchaseErrorKind) Message() string {
	switch k {
	case PurchaseNotFound:
		return "House not found"
	case PurchaseLotteryInactive:
		return "Lottery is not active for this house"
	case PurchaseSoldOut:
		return "No tickets remaining for this house"
	case PurchaseUnavailable:
		return "Ticket sales are temporarily unavailable, please retry"
	}
	return string(k)
}

type PurchaseResult struct {
	Success          bool              `json:"success"`
	Kind             PurchaseErrorKind `json:"kind,omitempty"`
	Message          string            `json:"message,omitempty"`
	RemainingTickets *int              `json:"remaining_tickets,omitempty"`
	TicketNumber     string            `json:"ticket_number,omitempty"`
}

func PurchaseFailed(kind PurchaseErrorKind) *PurchaseResult {
	return &PurchaseResult{
		Success: false,
		Kind:    kind,
		Message: kind.Message(),
	}
}

func PurchaseSucceeded(remaining int, ticketNumber string) *PurchaseResult {
	return &PurchaseResult{
		Success:          true,
		Message:          PurchaseSucceededMessage,
		RemainingTickets: &remaining,
		TicketNumber:     ticketNumber,
	}
}

type TicketSale struct {
	TicketID     uuid.UUID
	HouseID      string
	Sequence     int // sold count after this sale
	TicketNumber string
	SoldAt       time.Time
}

// TicketNumber formats the public ticket number for the n-th ticket of a house.
func TicketNumber(houseID string, sequence int) string {
	prefix := houseID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("T%s-%06d", prefix, sequence)
}

type LotteryResult struct {
	ID                 uuid.UUID  `json:"id"`
	HouseID            string     `json:"house_id"`
	DrawID             uuid.UUID  `json:"draw_id"`
	WinnerTicketNumber string     `json:"winner_ticket_number"`
	PrizePosition      int        `json:"prize_position"`
	PrizeType          string     `json:"prize_type"`
	PrizeValue         int64      `json:"prize_value"`
	PrizeDescription   string     `json:"prize_description"`
	IsVerified         bool       `json:"is_verified"`
	IsClaimed          bool       `json:"is_claimed"`
	ClaimedAt          *time.Time `json:"claimed_at,omitempty"`
	ResultDate         time.Time  `json:"result_date"`
	CreatedAt          time.Time  `json:"created_at"`
}

type Language struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	NativeName   string `json:"native_name"`
	FlagURL      string `json:"flag_url"`
	IsActive     bool   `json:"is_active"`
	IsDefault    bool   `json:"is_default"`
	DisplayOrder int    `json:"display_order"`
}

type Translation struct {
	Language string `json:"language"`
	Key      string `json:"key"`
	Value    string `json:"value"`
	Category string `json:"category"`
}
