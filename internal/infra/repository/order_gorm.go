package repository

import (
	"context"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// withProduct preloads the product, including soft-deleted ones.
func withProduct(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := withProduct(r.db.WithContext(ctx)).Where("id = ?", orderID).First(&o).Error
	if isNotFound(err) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Omit("Product").Create(&order).Error; err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderGormRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Order, error) {
	orders := []model.Order{}
	err := withProduct(r.db.WithContext(ctx)).
		Where(query, args...).
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListByBuyerID(ctx context.Context, buyerID int64) ([]model.Order, error) {
	return r.list(ctx, "buyer_id = ?", buyerID)
}

func (r *OrderGormRepository) ListBySellerID(ctx context.Context, sellerID int64) ([]model.Order, error) {
	return r.list(ctx, "seller_id = ?", sellerID)
}

func (r *OrderGormRepository) ListReadyForDelivery(ctx context.Context, sellerID int64) ([]model.Order, error) {
	return r.list(ctx,
		"seller_id = ? AND payment_status = ? AND status = ? AND delivery_person_id IS NULL",
		sellerID, model.PaymentStatusConfirmed, model.OrderStatusPending,
	)
}

func (r *OrderGormRepository) ListByDeliveryPersonID(ctx context.Context, deliveryPersonID int64) ([]model.Order, error) {
	return r.list(ctx, "delivery_person_id = ?", deliveryPersonID)
}

func (r *OrderGormRepository) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}

	q := r.db.WithContext(ctx).Model(&model.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.SellerID != nil {
		q = q.Where("seller_id = ?", *f.SellerID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	items := []model.Order{}
	offset := (f.Page - 1) * f.Limit
	if err := withProduct(q).Order("id desc").Limit(f.Limit).Offset(offset).Find(&items).Error; err != nil {
		return []model.Order{}, 0, err
	}
	return items, total, nil
}

func (r *OrderGormRepository) SellerStats(ctx context.Context, sellerID int64) (repo.SellerOrderStats, error) {
	var s repo.SellerOrderStats
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Order{}).Where("seller_id = ?", sellerID)
	}

	if err := base().Count(&s.OrderCount).Error; err != nil {
		return s, err
	}
	if err := base().Where("status = ?", model.OrderStatusPending).Count(&s.PendingCount).Error; err != nil {
		return s, err
	}
	if err := base().
		Where("payment_status = ? AND status = ? AND delivery_person_id IS NULL", model.PaymentStatusConfirmed, model.OrderStatusPending).
		Count(&s.ReadyForDeliveryCount).Error; err != nil {
		return s, err
	}
	if err := base().
		Where("payment_status = ?", model.PaymentStatusConfirmed).
		Select("CAST(COALESCE(SUM(total_price), 0) AS BIGINT)").
		Scan(&s.Revenue).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *OrderGormRepository) ConfirmPayment(ctx context.Context, orderID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND payment_status = ? AND status = ?", orderID, model.PaymentStatusUnpaid, model.OrderStatusPending).
		Update("payment_status", model.PaymentStatusConfirmed)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AssignDeliveryPerson writes the assignment only while the order is paid and unassigned,
// so two concurrent requests cannot both succeed.
func (r *OrderGormRepository) AssignDeliveryPerson(ctx context.Context, orderID int64, deliveryPersonID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND delivery_person_id IS NULL AND payment_status = ?", orderID, model.PaymentStatusConfirmed).
		Updates(map[string]interface{}{
			"delivery_person_id": deliveryPersonID,
			"status":             model.OrderStatusAssignedForDelivery,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *OrderGormRepository) MarkDelivered(ctx context.Context, orderID int64, deliveryPersonID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND delivery_person_id = ? AND status = ?", orderID, deliveryPersonID, model.OrderStatusAssignedForDelivery).
		Update("status", model.OrderStatusDelivered)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *OrderGormRepository) Cancel(ctx context.Context, orderID int64, buyerID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND buyer_id = ? AND status = ? AND payment_status = ?",
			orderID, buyerID, model.OrderStatusPending, model.PaymentStatusUnpaid).
		Update("status", model.OrderStatusCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
