package httpgin

import (
	"time"

	"github.com/amesa/housedraw/internal/domain"
)

type HouseImageInput struct {
	URL string `json:"url" binding:"required,url"`
	Alt string `json:"alt"`
}

type CreateHouseRequest struct {
	ID            string            `json:"id" binding:"omitempty,max=64"`
	Title         string            `json:"title" binding:"required"`
	Description   string            `json:"description"`
	Location      string            `json:"location"`
	Images        []HouseImageInput `json:"images" binding:"dive"`
	Bedrooms      int               `json:"bedrooms" binding:"gte=0"`
	Bathrooms     int               `json:"bathrooms" binding:"gte=0"`
	SquareFeet    int               `json:"sqft" binding:"gte=0"`
	Price         int64             `json:"price" binding:"gte=0"`
	TicketPrice   int64             `json:"ticket_price" binding:"required,gt=0"`
	TotalTickets  int               `json:"total_tickets" binding:"required,gt=0"`
	SoldTickets   int               `json:"sold_tickets" binding:"gte=0,ltefield=TotalTickets"`
	LotteryEndsAt time.Time         `json:"lottery_ends_at" binding:"required"`
	Status        string            `json:"status" binding:"omitempty,house_status"`
}

func (r CreateHouseRequest) toDomain() domain.House {
	h := domain.House{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		SquareFeet:    r.SquareFeet,
		Price:         r.Price,
		TicketPrice:   r.TicketPrice,
		TotalTickets:  r.TotalTickets,
		SoldTickets:   r.SoldTickets,
		LotteryEndsAt: r.LotteryEndsAt.UTC(),
		Status:        domain.HouseStatus(r.Status),
	}

	for _, img := range r.Images {
		h.Images = append(h.Images, domain.HouseImage{URL: img.URL, Alt: img.Alt})
	}

	return h
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,house_status"`
}

type TranslationInput struct {
	Language string `json:"language" binding:"required,langcode"`
	Key      string `json:"key" binding:"required,max=255"`
	Value    string `json:"value" binding:"required"`
	Category string `json:"category"`
}

type UpsertTranslationsRequest struct {
	Translations []TranslationInput `json:"translations" binding:"required,min=1,dive"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type UpsertTranslationsResponse struct {
	Written int `json:"written"`
}

type TranslateResponse struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	Value    string `json:"value"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Houses int    `json:"houses"`
}
