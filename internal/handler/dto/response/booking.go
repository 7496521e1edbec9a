package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingItemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID        uuid.UUID           `json:"id"`
	Start     time.Time           `json:"start"`
	End       time.Time           `json:"end"`
	Status    string              `json:"status"`
	Item      BookingItemResponse `json:"item"`
	Booker    BookerResponse      `json:"booker"`
	CreatedAt time.Time           `json:"createdAt"`
}

type BookingShortResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:     rm.ID,
		Start:  rm.Start,
		End:    rm.End,
		Status: rm.Status,
		Item: BookingItemResponse{
			ID:   rm.Item.ID,
			Name: rm.Item.Name,
		},
		Booker: BookerResponse{
			ID:   rm.Booker.ID,
			Name: rm.Booker.Name,
		},
		CreatedAt: rm.CreatedAt,
	}
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	out := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromBookingRM(rm)
	}
	return out
}

func FromBookingShortRM(rm *readmodel.BookingShortRM) *BookingShortResponse {
	if rm == nil {
		return nil
	}
	return &BookingShortResponse{
		ID:       rm.ID,
		BookerID: rm.BookerID,
		Start:    rm.Start,
		End:      rm.End,
	}
}
