package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-catalog/core"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// ProductInput carries a create or partial update. Nil fields are left
// untouched on update.
type ProductInput struct {
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	CategoryID   *int64
	Stock        *int
	MinimumStock *int
}

func (in ProductInput) Empty() bool {
	return in.Name == nil &&
		in.Description == nil &&
		in.Price == nil &&
		in.CategoryID == nil &&
		in.Stock == nil &&
		in.MinimumStock == nil
}

type CatalogStore struct {
	db         *bun.DB
	categories repository.Repository[*categoryRecord]
	now        func() time.Time
}

func NewCatalogStore(db *bun.DB) (*CatalogStore, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlstore: bun db is required")
	}
	categories := repository.NewRepository[*categoryRecord](db, categoryHandlers())
	if validator, ok := categories.(repository.Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, fmt.Errorf("sqlstore: invalid category repository wiring: %w", err)
		}
	}
	return &CatalogStore{
		db:         db,
		categories: categories,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *CatalogStore) ready() error {
	if s == nil || s.db == nil || s.categories == nil {
		return fmt.Errorf("sqlstore: catalog store is not configured")
	}
	return nil
}

func (s *CatalogStore) ListCategories(ctx context.Context) ([]core.CategoryRecord, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	records, _, err := s.categories.List(ctx, repository.OrderBy("id ASC"))
	if err != nil {
		return nil, storeError("list categories", err)
	}
	out := make([]core.CategoryRecord, 0, len(records))
	for _, record := range records {
		out = append(out, record.toDomain())
	}
	return out, nil
}

func (s *CatalogStore) ListProducts(ctx context.Context) ([]core.ProductRecord, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.selectProducts(ctx, s.db, nil)
}

func (s *CatalogStore) GetProduct(ctx context.Context, id int64) (core.ProductRecord, error) {
	if err := s.ready(); err != nil {
		return core.ProductRecord{}, err
	}
	return s.getProduct(ctx, s.db, id)
}

// ListProductsByCategory matches the category name case-insensitively. An
// unknown category yields an empty list.
func (s *CatalogStore) ListProductsByCategory(ctx context.Context, name string) ([]core.ProductRecord, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInputError("nombre", "category name is required")
	}
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, 1)
	for _, category := range categories {
		if strings.EqualFold(strings.TrimSpace(category.Name), name) {
			ids = append(ids, category.ID)
		}
	}
	if len(ids) == 0 {
		return []core.ProductRecord{}, nil
	}
	return s.selectProducts(ctx, s.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("p.categoria_id IN (?)", bun.In(ids))
	})
}

func (s *CatalogStore) ListLowStock(ctx context.Context) ([]core.InventoryRecord, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var records []inventoryRecord
	err := s.db.NewSelect().
		Model(&records).
		Where("i.cantidad <= i.stock_minimo").
		OrderExpr("i.producto_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storeError("list low stock", err)
	}
	out := make([]core.InventoryRecord, 0, len(records))
	for i := range records {
		out = append(out, records[i].toDomain())
	}
	return out, nil
}

func (s *CatalogStore) CreateProduct(ctx context.Context, in ProductInput) (core.ProductRecord, error) {
	if err := s.ready(); err != nil {
		return core.ProductRecord{}, err
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return core.ProductRecord{}, invalidInputError("nombre", "name is required")
	}
	if in.Price == nil || in.Price.IsNegative() {
		return core.ProductRecord{}, invalidInputError("precio", "price is required and must not be negative")
	}
	if in.CategoryID == nil || *in.CategoryID < 1 {
		return core.ProductRecord{}, invalidInputError("categoriaId", "category id is required")
	}
	if err := validateStockFields(in); err != nil {
		return core.ProductRecord{}, err
	}

	var created core.ProductRecord
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := s.requireCategory(ctx, tx, *in.CategoryID); err != nil {
			return err
		}
		now := s.now()
		record := &productRecord{
			Name:       strings.TrimSpace(*in.Name),
			Price:      *in.Price,
			CategoryID: *in.CategoryID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if in.Description != nil {
			record.Description = strings.TrimSpace(*in.Description)
		}
		if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
			return storeError("insert product", err)
		}

		inventory := &inventoryRecord{ProductID: record.ID, UpdatedAt: now}
		if in.Stock != nil {
			inventory.Quantity = *in.Stock
		}
		if in.MinimumStock != nil {
			inventory.MinimumStock = *in.MinimumStock
		}
		if _, err := tx.NewInsert().Model(inventory).Exec(ctx); err != nil {
			return storeError("insert inventory", err)
		}

		product, err := s.getProduct(ctx, tx, record.ID)
		if err != nil {
			return err
		}
		created = product
		return nil
	})
	if err != nil {
		return core.ProductRecord{}, err
	}
	return created, nil
}

// UpdateProduct applies the non-nil fields of in. Inventory values are
// merged into the existing row, which is created when missing.
func (s *CatalogStore) UpdateProduct(ctx context.Context, id int64, in ProductInput) (core.ProductRecord, error) {
	if err := s.ready(); err != nil {
		return core.ProductRecord{}, err
	}
	if in.Empty() {
		return core.ProductRecord{}, invalidInputError("body", "no fields to update")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return core.ProductRecord{}, invalidInputError("nombre", "name must not be blank")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return core.ProductRecord{}, invalidInputError("precio", "price must not be negative")
	}
	if err := validateStockFields(in); err != nil {
		return core.ProductRecord{}, err
	}

	var updated core.ProductRecord
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		record := &productRecord{}
		if err := tx.NewSelect().Model(record).Where("p.id = ?", id).Limit(1).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return notFoundError(ResourceProduct, id)
			}
			return storeError("load product", err)
		}

		now := s.now()
		if in.Name != nil {
			record.Name = strings.TrimSpace(*in.Name)
		}
		if in.Description != nil {
			record.Description = strings.TrimSpace(*in.Description)
		}
		if in.Price != nil {
			record.Price = *in.Price
		}
		if in.CategoryID != nil {
			if err := s.requireCategory(ctx, tx, *in.CategoryID); err != nil {
				return err
			}
			record.CategoryID = *in.CategoryID
		}
		record.UpdatedAt = now
		if _, err := tx.NewUpdate().Model(record).WherePK().Exec(ctx); err != nil {
			return storeError("update product", err)
		}

		if in.Stock != nil || in.MinimumStock != nil {
			if err := s.mergeInventory(ctx, tx, id, in, now); err != nil {
				return err
			}
		}

		product, err := s.getProduct(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return core.ProductRecord{}, err
	}
	return updated, nil
}

func (s *CatalogStore) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*inventoryRecord)(nil)).
			Where("producto_id = ?", id).
			Exec(ctx); err != nil {
			return storeError("delete inventory", err)
		}
		res, err := tx.NewDelete().
			Model((*productRecord)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return storeError("delete product", err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return notFoundError(ResourceProduct, id)
		}
		return nil
	})
}

func (s *CatalogStore) mergeInventory(ctx context.Context, tx bun.Tx, productID int64, in ProductInput, now time.Time) error {
	inventory := &inventoryRecord{}
	err := tx.NewSelect().Model(inventory).Where("i.producto_id = ?", productID).Limit(1).Scan(ctx)
	missing := errors.Is(err, sql.ErrNoRows)
	if err != nil && !missing {
		return storeError("load inventory", err)
	}
	if missing {
		inventory = &inventoryRecord{ProductID: productID}
	}
	if in.Stock != nil {
		inventory.Quantity = *in.Stock
	}
	if in.MinimumStock != nil {
		inventory.MinimumStock = *in.MinimumStock
	}
	inventory.UpdatedAt = now
	if missing {
		if _, err := tx.NewInsert().Model(inventory).Exec(ctx); err != nil {
			return storeError("insert inventory", err)
		}
		return nil
	}
	if _, err := tx.NewUpdate().Model(inventory).WherePK().Exec(ctx); err != nil {
		return storeError("update inventory", err)
	}
	return nil
}

func (s *CatalogStore) requireCategory(ctx context.Context, db bun.IDB, categoryID int64) error {
	exists, err := db.NewSelect().
		Model((*categoryRecord)(nil)).
		Where("c.id = ?", categoryID).
		Exists(ctx)
	if err != nil {
		return storeError("load category", err)
	}
	if !exists {
		return notFoundError(ResourceCategory, categoryID)
	}
	return nil
}

func (s *CatalogStore) getProduct(ctx context.Context, db bun.IDB, id int64) (core.ProductRecord, error) {
	products, err := s.selectProducts(ctx, db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("p.id = ?", id).Limit(1)
	})
	if err != nil {
		return core.ProductRecord{}, err
	}
	if len(products) == 0 {
		return core.ProductRecord{}, notFoundError(ResourceProduct, id)
	}
	return products[0], nil
}

func (s *CatalogStore) selectProducts(ctx context.Context, db bun.IDB, filter func(*bun.SelectQuery) *bun.SelectQuery) ([]core.ProductRecord, error) {
	query := db.NewSelect().
		TableExpr("products AS p").
		ColumnExpr("p.id, p.nombre, p.descripcion, p.precio").
		ColumnExpr("c.nombre AS categoria_nombre").
		ColumnExpr("COALESCE(i.cantidad, 0) AS stock").
		ColumnExpr("COALESCE(i.stock_minimo, 0) AS stock_minimo").
		Join("JOIN categories AS c ON c.id = p.categoria_id").
		Join("LEFT JOIN inventory AS i ON i.producto_id = p.id").
		OrderExpr("p.id ASC")
	if filter != nil {
		query = filter(query)
	}
	var rows []productRow
	if err := query.Scan(ctx, &rows); err != nil {
		return nil, storeError("select products", err)
	}
	out := make([]core.ProductRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func validateStockFields(in ProductInput) error {
	if in.Stock != nil && *in.Stock < 0 {
		return invalidInputError("stock", "stock must not be negative")
	}
	if in.MinimumStock != nil && *in.MinimumStock < 0 {
		return invalidInputError("stockMinimo", "minimum stock must not be negative")
	}
	return nil
}
