package create_car

import "github.com/m04kA/DriveX-RentalService/internal/service/catalog/models"

// CreateCarRequest HTTP request model
type CreateCarRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	HourlyRate   int64   `json:"hourlyRate"`
	Transmission *string `json:"transmission,omitempty"`
	FuelType     *string `json:"fuelType,omitempty"`
	Seats        *int    `json:"seats,omitempty"`
	Location     *string `json:"location,omitempty"`
	IsAvailable  bool    `json:"isAvailable"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCarRequest) ToServiceRequest() models.CreateCarRequest {
	return models.CreateCarRequest{
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
