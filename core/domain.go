package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRecord struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion,omitempty"`
	Price        decimal.Decimal `json:"precio"`
	CategoryName string          `json:"categoriaNombre,omitempty"`
	Stock        int             `json:"stock"`
	LowStock     bool            `json:"stockBajo"`
}

type CategoryRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}

type InventoryRecord struct {
	ProductID        int64     `json:"productoId"`
	Quantity         int       `json:"cantidad"`
	MinimumThreshold int       `json:"stockMinimo"`
	UpdatedAt        time.Time `json:"fechaActualizacion"`
}

// ProductMutationRequest is the create/update payload. CategoryID is the
// authoritative reference; the resolved category name only ever comes back
// from the data service.
type ProductMutationRequest struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion,omitempty"`
	Price       decimal.Decimal `json:"precio"`
	CategoryID  int64           `json:"categoriaId,omitempty"`
	Stock       *int            `json:"stock"`
}

func IntPtr(value int) *int {
	return &value
}
