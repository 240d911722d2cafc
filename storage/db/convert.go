package db

import (
	"database/sql"

	"github.com/loganlanou/soleshop/internal/catalog"
)

// ToCatalog maps a stored row into the record a card renders from.
func (s Shoe) ToCatalog() catalog.Shoe {
	shoe := catalog.Shoe{
		Slug:        s.Slug,
		Name:        s.Name,
		ImageSrc:    s.ImageSrc,
		Price:       s.PriceCents,
		ReleaseDate: s.ReleaseDate,
		NumOfColors: int(s.NumColors),
	}
	if s.SalePriceCents.Valid {
		sale := s.SalePriceCents.Int64
		shoe.SalePrice = &sale
	}
	return shoe
}

// CreateParamsFromCatalog builds insert params for a catalog shoe.
func CreateParamsFromCatalog(id string, shoe catalog.Shoe) CreateShoeParams {
	params := CreateShoeParams{
		ID:          id,
		Slug:        shoe.Slug,
		Name:        shoe.Name,
		ImageSrc:    shoe.ImageSrc,
		PriceCents:  shoe.Price,
		ReleaseDate: shoe.ReleaseDate.UTC(),
		NumColors:   int64(shoe.NumOfColors),
	}
	if shoe.SalePrice != nil {
		params.SalePriceCents = sql.NullInt64{Int64: *shoe.SalePrice, Valid: true}
	}
	return params
}
