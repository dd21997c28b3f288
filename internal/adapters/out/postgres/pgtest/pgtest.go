// Package pgtest starts a disposable PostgreSQL container for integration
// suites and seeds reference data.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	postgres_adapter "wholesale/internal/adapters/out/postgres"
	"wholesale/internal/adapters/out/postgres/catalogrepo"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var tables = []string{
	"order_line_items",
	"orders",
	"deliveries",
	"delivery_documents",
	"supply_line_items",
	"supplies",
	"supply_documents",
	"warehouse_products",
	"warehouses",
	"products",
	"customers",
	"managers",
	"suppliers",
}

// Database is a migrated database running in a container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := postgres_adapter.Migrate(ctx, db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Truncate empties every table and resets identity sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

func (d *Database) SeedCustomer(lastName string) (int64, error) {
	dto := catalogrepo.CustomerDTO{
		FirstName:    "Ivan",
		LastName:     lastName,
		Phone:        "+7 900 000-00-00",
		RegisteredAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	err := d.DB.Create(&dto).Error
	return dto.ID, err
}

func (d *Database) SeedManager(lastName string) (int64, error) {
	dto := catalogrepo.ManagerDTO{FirstName: "Anna", LastName: lastName}
	err := d.DB.Create(&dto).Error
	return dto.ID, err
}

func (d *Database) SeedSupplier(name string) (int64, error) {
	dto := catalogrepo.SupplierDTO{Name: name, FirstName: "Petr", LastName: "Sidorov"}
	err := d.DB.Create(&dto).Error
	return dto.ID, err
}

func (d *Database) SeedProduct(name string, price string, minQuantity int) (int64, error) {
	dto := catalogrepo.ProductDTO{
		Name:        name,
		SKU:         strings.ToUpper(strings.ReplaceAll(name, " ", "-")),
		Price:       decimal.RequireFromString(price),
		Unit:        "pcs",
		MinQuantity: minQuantity,
	}
	err := d.DB.Create(&dto).Error
	return dto.ID, err
}

func (d *Database) SeedStock(address string, productID int64, quantity int) (int64, error) {
	warehouse := catalogrepo.WarehouseDTO{Address: address}
	if err := d.DB.Create(&warehouse).Error; err != nil {
		return 0, err
	}
	stock := catalogrepo.WarehouseProductDTO{
		WarehouseID: warehouse.ID,
		ProductID:   productID,
		Quantity:    quantity,
	}
	err := d.DB.Omit("Warehouse", "Product").Create(&stock).Error
	return warehouse.ID, err
}

// Count returns the number of rows in table.
func (d *Database) Count(table string) (int64, error) {
	var n int64
	err := d.DB.Table(table).Count(&n).Error
	return n, err
}
