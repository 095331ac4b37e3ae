package repository

import (
	"context"
	"testing"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/infra/db"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), db.Options("test"))
	require.NoError(t, err)

	// every connection to :memory: is a new database
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func seedUser(t *testing.T, gdb *gorm.DB, email string, role model.Role) model.User {
	t.Helper()
	u := model.User{Name: email, Email: email, PasswordHash: "x", Role: role, IsActive: true}
	require.NoError(t, gdb.Create(&u).Error)
	return u
}

func seedSeller(t *testing.T, gdb *gorm.DB, userID int64, shop string) model.Seller {
	t.Helper()
	s := model.Seller{UserID: userID, ShopName: shop}
	require.NoError(t, gdb.Create(&s).Error)
	return s
}

func seedProduct(t *testing.T, gdb *gorm.DB, sellerID int64, name string, price, stock int64) model.Product {
	t.Helper()
	p := model.Product{SellerID: sellerID, Name: name, Price: price, Stock: stock, IsActive: true}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}

func seedOrder(t *testing.T, gdb *gorm.DB, o model.Order) model.Order {
	t.Helper()
	if o.Quantity == 0 {
		o.Quantity = 1
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = model.PaymentStatusUnpaid
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	require.NoError(t, gdb.Omit("Product").Create(&o).Error)
	return o
}

var ctx = context.Background()
