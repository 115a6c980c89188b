package repository

import "github.com/wms-dojo/picking-trainer-api/internal/domain/entity"

// ProductRepository は Product の永続化ポート(DIP)。
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListAll は出題用に全商品を返す。カタログは高々数百件の前提。
	ListAll() ([]*entity.Product, error)
	// UpsertByCode はレガシーインポート用。code で突き合わせて挿入または更新する。
	UpsertByCode(product *entity.Product) error
	Delete(id string) error
}
