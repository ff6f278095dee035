package handler

import (
	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
	"github.com/yng-express/parcel-admin/internal/core/pricing"
)

func toCreateParcelInput(req createParcelRequest) ports.CreateParcelInput {
	input := ports.CreateParcelInput{
		CustomerID:    req.CustomerID,
		Barcode:       req.Barcode,
		SenderName:    req.SenderName,
		SenderAddress: req.SenderAddress,
		SenderCity:    req.SenderCity,
		SenderState:   req.SenderState,
		SenderZipCode: req.SenderZipCode,
		Description:   req.Description,
		Weight:        req.Weight,
		Length:        req.Length,
		Width:         req.Width,
		Height:        req.Height,
		DeclaredValue: req.DeclaredValue,
		Notes:         req.Notes,
	}
	if req.ManualPricing != nil {
		input.ManualPricing = &ports.ManualPricingInput{
			ShippingFee: req.ManualPricing.ShippingFee,
			Discount:    req.ManualPricing.Discount,
			TaxAmount:   req.ManualPricing.TaxAmount,
		}
	}
	return input
}

func toParcelResponse(p *domain.Parcel) parcelResponse {
	events := make([]trackingEventResponse, len(p.TrackingEvents))
	for i, ev := range p.TrackingEvents {
		events[i] = trackingEventResponse{
			Status:      string(ev.Status),
			Location:    ev.Location,
			Description: ev.Description,
			Timestamp:   ev.Timestamp.UTC(),
		}
	}

	return parcelResponse{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		Barcode:        p.Barcode,
		CustomerID:     p.CustomerID,
		Status:         string(p.Status),
		StatusCategory: string(pricing.Classify(string(p.Status))),
		Sender: senderResponse{
			Name:    p.Sender.Name,
			Address: p.Sender.Address,
			City:    p.Sender.City,
			State:   p.Sender.State,
			ZipCode: p.Sender.ZipCode,
		},
		Description: p.Description,
		Weight:      p.Weight,
		Dimensions: dimensionsResponse{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
		},
		DeclaredValue:         p.DeclaredValue,
		ShippingFee:           p.ShippingFee,
		Discount:              p.Discount,
		TaxAmount:             p.TaxAmount,
		TotalAmount:           p.TotalAmount,
		PaymentStatus:         string(p.PaymentState),
		PaymentStatusCategory: string(pricing.ClassifyPayment(string(p.PaymentState))),
		Notes:                 p.Notes,
		TrackingEvents:        events,
		CreatedAt:             p.CreatedAt.UTC(),
		UpdatedAt:             p.UpdatedAt.UTC(),
	}
}

func toParcelListResponse(parcels []*domain.Parcel) []parcelResponse {
	out := make([]parcelResponse, len(parcels))
	for i, p := range parcels {
		out[i] = toParcelResponse(p)
	}
	return out
}
