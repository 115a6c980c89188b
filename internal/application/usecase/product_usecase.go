package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/wms-dojo/picking-trainer-api/internal/application/dto"
	"github.com/wms-dojo/picking-trainer-api/internal/domain"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/repository"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/trainer"
)

// ProductUseCase は練習用カタログの CRUD と、ブラウザ版データの取り込み。
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase はユースケースを構築する。
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create は新しい商品を登録する。code 重複は domain.ErrDuplicate。
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Location:  in.Location,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID は商品を取得する。無ければ (nil, nil)。
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update は商品を更新する。nil のフィールドは変更しない。
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List は商品一覧をページングして返す。
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete は商品を削除する。
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ImportLegacy はブラウザ版エクスポートのカタログを取り込む。
// stock の無いレガシー商品は trainer.MigrateProducts でデフォルト在庫に補完してから、
// code で突き合わせて upsert する。
func (uc *ProductUseCase) ImportLegacy(in dto.ImportProductsRequest) (*dto.ImportResponse, error) {
	now := time.Now()
	products := make([]entity.Product, 0, len(in.Products))
	for _, item := range in.Products {
		products = append(products, entity.Product{
			Code:     item.Code,
			Name:     item.Name,
			Location: item.Location,
			Price:    item.Price,
			Stock:    item.Stock,
		})
	}
	migrated := trainer.MigrateProducts(products)
	for i := range migrated {
		migrated[i].ID = uuid.New().String()
		migrated[i].CreatedAt = now
		migrated[i].UpdatedAt = now
		if err := uc.repo.UpsertByCode(&migrated[i]); err != nil {
			return nil, err
		}
	}
	return &dto.ImportResponse{Imported: len(migrated)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Code:           p.Code,
		Name:           p.Name,
		Location:       p.Location,
		Price:          p.Price,
		Stock:          p.Stock,
		EffectiveStock: p.EffectiveStock(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
