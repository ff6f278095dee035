package handler

import (
	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
)

func toCreateCustomerInput(req createCustomerRequest) ports.CreateCustomerInput {
	return ports.CreateCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		HaitiStreet: req.HaitiStreet,
		HaitiCity:   req.HaitiCity,
		HaitiRegion: req.HaitiRegion,
	}
}

func toCustomerResponse(cu *domain.Customer) customerResponse {
	return customerResponse{
		ID:            cu.ID,
		FirstName:     cu.FirstName,
		LastName:      cu.LastName,
		Email:         cu.Email,
		Phone:         cu.Phone,
		CustomAddress: cu.CustomAddress,
		HaitiAddress: haitiAddressResponse{
			Street: cu.HaitiAddress.Street,
			City:   cu.HaitiAddress.City,
			Region: cu.HaitiAddress.Region,
		},
		CreatedAt: cu.CreatedAt.UTC(),
	}
}

func toCustomerDetailResponse(detail *ports.CustomerDetail) customerDetailResponse {
	return customerDetailResponse{
		customerResponse: toCustomerResponse(detail.Customer),
		ParcelCount:      detail.ParcelCount,
		InTransitCount:   detail.InTransitCount,
		DeliveredCount:   detail.DeliveredCount,
	}
}

func toCustomerListResponse(customers []*domain.Customer) []customerResponse {
	out := make([]customerResponse, len(customers))
	for i, cu := range customers {
		out[i] = toCustomerResponse(cu)
	}
	return out
}
