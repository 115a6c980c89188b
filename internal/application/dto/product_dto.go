package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest は商品登録の入力。
type CreateProductRequest struct {
	Code     string          `json:"code" validate:"required,min=1,max=100"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Location string          `json:"location"`
	Price    decimal.Decimal `json:"price"`
	Stock    *int            `json:"stock"` // 省略時は実効在庫 99 扱い
}

// UpdateProductRequest は商品更新の入力(nil のフィールドは変更しない)。
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Location *string          `json:"location"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
}

// ProductResponse は商品 1 件の出力。
type ProductResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Price          decimal.Decimal `json:"price"`
	Stock          *int            `json:"stock"`
	EffectiveStock int             `json:"effectiveStock"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ProductListResponse はページング付き商品一覧。
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ImportProduct はブラウザ版エクスポート(localStorage)由来の商品 1 件。
// stock が無いレガシー形式を許容し、取り込み時にデフォルト在庫へ補完する。
type ImportProduct struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Location string          `json:"location"`
	Price    decimal.Decimal `json:"price"`
	Stock    *int            `json:"stock"`
}

// ImportProductsRequest はレガシーカタログの一括取り込み入力。
type ImportProductsRequest struct {
	Products []ImportProduct `json:"products"`
}

// ImportResponse は取り込み結果。
type ImportResponse struct {
	Imported int `json:"imported"`
}
