package courier

import (
	"context"
	"fmt"

	"lastmile/internal/entities"
)

type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil ||
		courierModify.Phone == nil ||
		courierModify.TransportType == nil {
		return 0, ErrMissingRequiredFields
	}

	if courierModify.Status == nil {
		status := entities.DefaultStatusType
		courierModify.Status = &status
	}

	if err := validateModify(courierModify); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil || *courierModify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}

	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.Status == nil &&
		courierModify.TransportType == nil &&
		courierModify.Location == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(courierModify); err != nil {
		return nil, err
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context, filter entities.CourierFilter) ([]entities.Courier, error) {
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return nil, ErrInvalidStatus
	}
	if filter.TransportType != nil && !isValidTransport(*filter.TransportType) {
		return nil, ErrInvalidTransport
	}

	couriers, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// validateModify проверяет только заданные поля.
func validateModify(m entities.CourierModify) error {
	if m.Name != nil && !isValidName(*m.Name) {
		return ErrInvalidName
	}
	if m.Phone != nil && !isValidPhone(*m.Phone) {
		return ErrInvalidPhone
	}
	if m.Status != nil && !isValidStatus(*m.Status) {
		return ErrInvalidStatus
	}
	if m.TransportType != nil && !isValidTransport(*m.TransportType) {
		return ErrInvalidTransport
	}
	if !isValidLocation(m.Location) {
		return ErrInvalidLocation
	}
	return nil
}
