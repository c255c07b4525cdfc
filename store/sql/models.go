package sqlstore

import (
	"time"

	"github.com/goliatone/go-catalog/core"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type categoryRecord struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Name        string `bun:"nombre,notnull"`
	Description string `bun:"descripcion,notnull"`
}

func (r *categoryRecord) toDomain() core.CategoryRecord {
	if r == nil {
		return core.CategoryRecord{}
	}
	return core.CategoryRecord{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type productRecord struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID          int64           `bun:"id,pk,autoincrement"`
	Name        string          `bun:"nombre,notnull"`
	Description string          `bun:"descripcion,notnull"`
	Price       decimal.Decimal `bun:"precio,notnull"`
	CategoryID  int64           `bun:"categoria_id,notnull"`
	CreatedAt   time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

type inventoryRecord struct {
	bun.BaseModel `bun:"table:inventory,alias:i"`

	ProductID    int64     `bun:"producto_id,pk"`
	Quantity     int       `bun:"cantidad,notnull"`
	MinimumStock int       `bun:"stock_minimo,notnull"`
	UpdatedAt    time.Time `bun:"fecha_actualizacion,nullzero,notnull,default:current_timestamp"`
}

func (r *inventoryRecord) toDomain() core.InventoryRecord {
	if r == nil {
		return core.InventoryRecord{}
	}
	return core.InventoryRecord{
		ProductID:        r.ProductID,
		Quantity:         r.Quantity,
		MinimumThreshold: r.MinimumStock,
		UpdatedAt:        r.UpdatedAt.UTC(),
	}
}

// productRow is the joined product view served on the wire.
type productRow struct {
	ID           int64           `bun:"id"`
	Name         string          `bun:"nombre"`
	Description  string          `bun:"descripcion"`
	Price        decimal.Decimal `bun:"precio"`
	CategoryName string          `bun:"categoria_nombre"`
	Stock        int             `bun:"stock"`
	MinimumStock int             `bun:"stock_minimo"`
}

func (r productRow) toDomain() core.ProductRecord {
	return core.ProductRecord{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		CategoryName: r.CategoryName,
		Stock:        r.Stock,
		LowStock:     r.Stock < r.MinimumStock,
	}
}
