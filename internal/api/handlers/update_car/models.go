package update_car

import "github.com/m04kA/DriveX-RentalService/internal/service/catalog/models"

// UpdateCarRequest HTTP request model. Отсутствующие поля не изменяются.
type UpdateCarRequest struct {
	Name         *string `json:"name,omitempty"`
	Category     *string `json:"category,omitempty"`
	HourlyRate   *int64  `json:"hourlyRate,omitempty"`
	Transmission *string `json:"transmission,omitempty"`
	FuelType     *string `json:"fuelType,omitempty"`
	Seats        *int    `json:"seats,omitempty"`
	Location     *string `json:"location,omitempty"`
	IsAvailable  *bool   `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCarRequest) ToServiceRequest() models.UpdateCarRequest {
	return models.UpdateCarRequest{
		Name:         r.Name,
		Category:     r.Category,
		HourlyRate:   r.HourlyRate,
		Transmission: r.Transmission,
		FuelType:     r.FuelType,
		Seats:        r.Seats,
		Location:     r.Location,
		IsAvailable:  r.IsAvailable,
	}
}
