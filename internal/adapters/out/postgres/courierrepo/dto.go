// Package courierrepo persists courier aggregates and their last known
// positions with GORM, converting between domain entities and table rows.
package courierrepo

import (
	"time"

	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the row layout of the couriers table. The position columns
// share a composite index used by bounding box lookups.
type CourierDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name       string      `gorm:"type:varchar(255);not null"`
	SpeedKmh   float64     `gorm:"type:double precision;not null"`
	Location   LocationDTO `gorm:"embedded"`
	ReportedAt time.Time   `gorm:"type:timestamptz;not null"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO holds the last reported position in decimal degrees.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null;index:idx_couriers_position,priority:1"`
	Longitude float64 `gorm:"type:double precision;not null;index:idx_couriers_position,priority:2"`
}

func fromDomain(courier *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:       courier.ID().Bytes(),
		Name:     courier.Name(),
		SpeedKmh: courier.SpeedKmh(),
		Location: LocationDTO{
			Latitude:  courier.Location().Lat,
			Longitude: courier.Location().Lon,
		},
		ReportedAt: courier.ReportedAt(),
	}
}

// toDomain rebuilds the aggregate through RestoreCourier, so rows that no
// longer satisfy domain rules surface as errors instead of bad entities.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewCoordinate(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.SpeedKmh, loc, dto.ReportedAt)
}

func toDomainList(dtos []CourierDTO) ([]*courier.Courier, error) {
	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}
