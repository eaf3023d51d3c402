package courierrepo

import (
	"context"
	"errors"

	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites the stored courier. Updating a courier that was never
// added fails with an errs.ObjectNotFoundError.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "speed_kmh", "latitude", "longitude", "reported_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("courier", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every courier ordered by name, ties by id.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindInBoundingBox retrieves couriers whose position lies inside box,
// edges included.
//
// Example:
//
//	box, _ := kernel.BoundingBoxAround(target, 5)
//	candidates, err := repo.FindInBoundingBox(ctx, box)
//	if err != nil {
//		return fmt.Errorf("failed to load candidates: %w", err)
//	}
func (r *GormCourierRepository) FindInBoundingBox(ctx context.Context, box kernel.BoundingBox) ([]*courier.Courier, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}

	sw, ne := box.SouthWest(), box.NorthEast()
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", sw.Lat, ne.Lat).
		Where("longitude BETWEEN ? AND ?", sw.Lon, ne.Lon).
		Order("name, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
