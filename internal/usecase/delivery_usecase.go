package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"
)

type DeliveryUsecase struct {
	profiles repo.DeliveryProfileRepository
	users    repo.UserRepository
}

func NewDeliveryUsecase(profiles repo.DeliveryProfileRepository, users repo.UserRepository) *DeliveryUsecase {
	return &DeliveryUsecase{profiles: profiles, users: users}
}

// ListDeliveryPersons lists delivery-role users, optionally by availability.
func (u *DeliveryUsecase) ListDeliveryPersons(ctx context.Context, status string) ([]repo.DeliveryPerson, error) {
	status = strings.TrimSpace(status)
	switch model.AvailabilityStatus(status) {
	case "", model.AvailabilityOnline, model.AvailabilityOffline:
	default:
		return nil, NewHTTPError(http.StatusBadRequest, "status must be online or offline.")
	}

	persons, err := u.users.ListDeliveryPersons(ctx, status)
	if err != nil {
		return nil, internal("list delivery persons", err)
	}
	return persons, nil
}

func (u *DeliveryUsecase) GetProfile(ctx context.Context, actor Actor) (*model.DeliveryProfile, error) {
	p, err := u.profiles.FindByUserID(ctx, actor.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, MsgDeliveryProfileNotFound)
	}
	if err != nil {
		return nil, internal("find delivery profile", err)
	}
	return p, nil
}

type SaveDeliveryProfileInput struct {
	VehicleType string
	PlateNumber string
}

// SaveProfile creates the caller's profile (offline) or updates its vehicle.
func (u *DeliveryUsecase) SaveProfile(ctx context.Context, actor Actor, in SaveDeliveryProfileInput) (*model.DeliveryProfile, error) {
	p := &model.DeliveryProfile{
		UserID:             actor.UserID,
		VehicleType:        strings.TrimSpace(in.VehicleType),
		PlateNumber:        strings.TrimSpace(in.PlateNumber),
		AvailabilityStatus: model.AvailabilityOffline,
	}
	if err := u.profiles.Upsert(ctx, p); err != nil {
		return nil, internal("save delivery profile", err)
	}
	return p, nil
}

// ToggleAvailability flips online/offline. Toggling twice restores the original value.
func (u *DeliveryUsecase) ToggleAvailability(ctx context.Context, actor Actor) (*model.DeliveryProfile, error) {
	p, err := u.GetProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	next := p.AvailabilityStatus.Opposite()
	ok, err := u.profiles.SetAvailability(ctx, actor.UserID, p.AvailabilityStatus, next)
	if err != nil {
		return nil, internal("set availability", err)
	}
	if !ok {
		return nil, NewHTTPError(http.StatusConflict, MsgAvailabilityChanged)
	}

	return u.GetProfile(ctx, actor)
}
