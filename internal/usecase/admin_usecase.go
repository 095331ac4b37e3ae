package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"
)

type AdminUsecase struct {
	users  repo.UserRepository
	orders repo.OrderRepository
	audit  repo.AuditLogRepository
}

func NewAdminUsecase(users repo.UserRepository, orders repo.OrderRepository, audit repo.AuditLogRepository) *AdminUsecase {
	return &AdminUsecase{users: users, orders: orders, audit: audit}
}

func (u *AdminUsecase) ListUsers(ctx context.Context, role string, limit int) ([]model.User, error) {
	if role != "" && !model.Role(role).IsValid() {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid role")
	}
	users, err := u.users.List(ctx, repo.UserListFilter{Role: model.Role(role), Limit: limit})
	if err != nil {
		return nil, internal("list users", err)
	}
	return users, nil
}

// SetUserActive suspends or re-enables an account and records the change.
func (u *AdminUsecase) SetUserActive(ctx context.Context, actor Actor, userID int64, active bool) (*model.User, error) {
	if userID == actor.UserID && !active {
		return nil, NewHTTPError(http.StatusBadRequest, "cannot deactivate yourself")
	}

	before, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.users.SetActive(ctx, userID, active); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, MsgUserNotFound)
		}
		return nil, internal("set user active", err)
	}

	if err := u.audit.Create(ctx, model.AuditLog{
		ActorUserID:  actor.UserID,
		Action:       model.AuditActionSetUserActive,
		ResourceType: model.AuditResourceUser,
		ResourceID:   userID,
		BeforeJSON:   fmt.Sprintf(`{"is_active":%t}`, before.IsActive),
		AfterJSON:    fmt.Sprintf(`{"is_active":%t}`, active),
		CreatedAt:    time.Now(),
	}); err != nil {
		return nil, internal("write audit log", err)
	}

	return u.findUser(ctx, userID)
}

type ForceLogoutOutput struct {
	UserID          int64 `json:"user_id"`
	NewTokenVersion int   `json:"new_token_version"`
}

// ForceLogout bumps the token version so every issued session stops working.
func (u *AdminUsecase) ForceLogout(ctx context.Context, actor Actor, userID int64) (ForceLogoutOutput, error) {
	before, err := u.findUser(ctx, userID)
	if err != nil {
		return ForceLogoutOutput{}, err
	}

	if err := u.users.IncrementTokenVersion(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ForceLogoutOutput{}, NewHTTPError(http.StatusNotFound, MsgUserNotFound)
		}
		return ForceLogoutOutput{}, internal("increment token version", err)
	}

	after, err := u.findUser(ctx, userID)
	if err != nil {
		return ForceLogoutOutput{}, err
	}

	if err := u.audit.Create(ctx, model.AuditLog{
		ActorUserID:  actor.UserID,
		Action:       model.AuditActionForceLogout,
		ResourceType: model.AuditResourceUser,
		ResourceID:   userID,
		BeforeJSON:   fmt.Sprintf(`{"token_version":%d}`, before.TokenVersion),
		AfterJSON:    fmt.Sprintf(`{"token_version":%d}`, after.TokenVersion),
		CreatedAt:    time.Now(),
	}); err != nil {
		return ForceLogoutOutput{}, internal("write audit log", err)
	}

	return ForceLogoutOutput{UserID: userID, NewTokenVersion: after.TokenVersion}, nil
}

type AdminOrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *AdminUsecase) ListOrders(ctx context.Context, f repo.AdminOrderListFilter) (AdminOrderListOutput, error) {
	if f.Page < 1 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	switch model.OrderStatus(f.Status) {
	case "", model.OrderStatusPending, model.OrderStatusAssignedForDelivery, model.OrderStatusDelivered, model.OrderStatusCancelled:
	default:
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	switch model.PaymentStatus(f.PaymentStatus) {
	case "", model.PaymentStatusUnpaid, model.PaymentStatusConfirmed:
	default:
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_status")
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "from must be before to")
	}

	items, total, err := u.orders.ListAdmin(ctx, f)
	if err != nil {
		return AdminOrderListOutput{}, internal("list orders", err)
	}
	return AdminOrderListOutput{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (u *AdminUsecase) ListAuditLogs(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	logs, err := u.audit.List(ctx, f)
	if err != nil {
		return nil, internal("list audit logs", err)
	}
	return logs, nil
}

func (u *AdminUsecase) findUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, MsgUserNotFound)
	}
	if err != nil {
		return nil, internal("find user", err)
	}
	return user, nil
}
