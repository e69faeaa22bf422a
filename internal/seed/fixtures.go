// Package seed holds the built-in catalog: houses, languages, translations and
// sample lottery results.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amesa/housedraw/internal/domain"
)

//go:embed fixtures/translations.json
var translationsJSON []byte

const (
	imgCondoExterior  = "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800&h=600&fit=crop"
	imgLivingRoom     = "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=600&fit=crop"
	imgKitchen        = "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=800&h=600&fit=crop"
	imgBedroom        = "https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?w=800&h=600&fit=crop"
	imgFamilyExterior = "https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=800&h=600&fit=crop"
	imgLounge         = "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop"
	imgVillaExterior  = "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800&h=600&fit=crop"
	imgBathroom       = "https://images.unsplash.com/photo-1584622650111-993a426fbf0a?w=800&h=600&fit=crop"
)

// Houses returns the built-in listings. Lottery end dates are relative to now
// so a fresh catalog always has open lotteries.
func Houses(now time.Time) []domain.House {
	day := 24 * time.Hour
	now = now.UTC().Truncate(time.Hour)

	return []domain.House{
		{
			ID:          "1",
			Title:       "Modern Downtown Condo",
			Description: "Stunning 2-bedroom condo in the heart of downtown with city views and modern amenities. Perfect for urban professionals seeking luxury living.",
			Location:    "Downtown, City Center",
			Images: []domain.HouseImage{
				{URL: imgCondoExterior, Alt: "Modern downtown condo exterior"},
				{URL: imgLivingRoom, Alt: "Modern living room"},
				{URL: imgKitchen, Alt: "Modern kitchen"},
				{URL: imgBedroom, Alt: "Modern bedroom"},
			},
			Bedrooms:      2,
			Bathrooms:     2,
			SquareFeet:    1200,
			Price:         450000,
			TicketPrice:   50,
			TotalTickets:  1000,
			SoldTickets:   650,
			LotteryEndsAt: now.Add(30 * day),
			Status:        domain.HouseActive,
		},
		{
			ID:          "2",
			Title:       "Suburban Family Home",
			Description: "Beautiful 4-bedroom family home with large backyard and garage in quiet neighborhood. Ideal for growing families.",
			Location:    "Maple Heights Suburb",
			Images: []domain.HouseImage{
				{URL: imgFamilyExterior, Alt: "Suburban family home exterior"},
				{URL: imgLounge, Alt: "Family living room"},
				{URL: imgKitchen, Alt: "Family kitchen"},
				{URL: imgLivingRoom, Alt: "Family dining room"},
			},
			Bedrooms:      4,
			Bathrooms:     3,
			SquareFeet:    2400,
			Price:         680000,
			TicketPrice:   75,
			TotalTickets:  1500,
			SoldTickets:   890,
			LotteryEndsAt: now.Add(35 * day),
			Status:        domain.HouseActive,
		},
		{
			ID:          "3",
			Title:       "Luxury Waterfront Villa",
			Description: "Exclusive waterfront villa with private beach access and panoramic ocean views. The ultimate in luxury living.",
			Location:    "Oceanfront District",
			Images: []domain.HouseImage{
				{URL: imgVillaExterior, Alt: "Luxury waterfront villa exterior"},
				{URL: imgLounge, Alt: "Luxury living area"},
				{URL: imgBedroom, Alt: "Luxury master bedroom"},
				{URL: imgBathroom, Alt: "Luxury bathroom"},
			},
			Bedrooms:      5,
			Bathrooms:     4,
			SquareFeet:    3500,
			Price:         1200000,
			TicketPrice:   100,
			TotalTickets:  2000,
			SoldTickets:   1245,
			LotteryEndsAt: now.Add(44 * day),
			Status:        domain.HouseActive,
		},
		{
			ID:          "4",
			Title:       "Historic Brick Townhouse",
			Description: "Restored three-storey townhouse on a tree-lined street, walking distance to the old market square.",
			Location:    "Old Town",
			Images: []domain.HouseImage{
				{URL: imgFamilyExterior, Alt: "Townhouse facade"},
				{URL: imgLivingRoom, Alt: "Townhouse living room"},
			},
			Bedrooms:      3,
			Bathrooms:     2,
			SquareFeet:    1800,
			Price:         560000,
			TicketPrice:   60,
			TotalTickets:  1200,
			LotteryEndsAt: now.Add(75 * day),
			Status:        domain.HouseUpcoming,
		},
		{
			ID:          "5",
			Title:       "Lakeside Cottage",
			Description: "Cosy timber cottage with a private jetty and an open-plan living area facing the lake.",
			Location:    "Silver Lake",
			Images: []domain.HouseImage{
				{URL: imgVillaExterior, Alt: "Cottage by the lake"},
				{URL: imgKitchen, Alt: "Cottage kitchen"},
				{URL: imgBathroom, Alt: "Cottage bathroom"},
			},
			Bedrooms:      2,
			Bathrooms:     1,
			SquareFeet:    950,
			Price:         320000,
			TicketPrice:   40,
			TotalTickets:  800,
			SoldTickets:   800,
			LotteryEndsAt: now.Add(-12 * day),
			Status:        domain.HouseEnded,
		},
	}
}

func Languages() []domain.Language {
	return []domain.Language{
		{
			Code:         "en",
			Name:         "English",
			NativeName:   "English",
			FlagURL:      "https://flagcdn.com/w40/us.png",
			IsActive:     true,
			IsDefault:    true,
			DisplayOrder: 1,
		},
		{
			Code:         "pl",
			Name:         "Polish",
			NativeName:   "Polski",
			FlagURL:      "https://flagcdn.com/w40/pl.png",
			IsActive:     true,
			DisplayOrder: 2,
		},
	}
}

// Translations returns the built-in translation catalog.
func Translations() ([]domain.Translation, error) {
	const op = "seed.Translations"

	var rows []domain.Translation
	if err := json.Unmarshal(translationsJSON, &rows); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return rows, nil
}

// Results builds sample draws for up to three ended houses that sold tickets.
// The third prize of every draw is already claimed.
func Results(houses []domain.House, now time.Time) []domain.LotteryResult {
	now = now.UTC()

	var out []domain.LotteryResult
	drawn := 0
	for _, h := range houses {
		if drawn == 3 {
			break
		}
		if h.Status != domain.HouseEnded || h.SoldTickets == 0 {
			continue
		}

		drawID := uuid.New()
		at := now.AddDate(0, 0, -10+drawn)

		for pos := 1; pos <= min(domain.MaxPrizePositions, h.SoldTickets); pos++ {
			r := domain.LotteryResult{
				ID:                 uuid.New(),
				HouseID:            h.ID,
				DrawID:             drawID,
				WinnerTicketNumber: domain.TicketNumber(h.ID, pos),
				PrizePosition:      pos,
				PrizeType:          domain.PrizeType(pos),
				PrizeValue:         domain.PrizeValue(pos, h.Price),
				PrizeDescription:   domain.PrizeDescription(pos, h.Title),
				IsVerified:         true,
				ResultDate:         at,
				CreatedAt:          at,
			}
			if pos == 3 {
				claimed := now.AddDate(0, 0, -5)
				r.IsClaimed = true
				r.ClaimedAt = &claimed
			}
			out = append(out, r)
		}

		drawn++
	}

	return out
}
