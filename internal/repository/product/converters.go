package product

import "storefront/internal/entities"

func ToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}
	return &entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromDomainModify(productModify *entities.ProductModify) *ProductModifyDB {
	if productModify == nil {
		return nil
	}
	productDB := &ProductModifyDB{}

	if productModify.ID != nil {
		productDB.ID = productModify.ID
	}
	if productModify.Name != nil {
		productDB.Name = productModify.Name
	}
	if productModify.Description != nil {
		productDB.Description = productModify.Description
	}
	if productModify.Price != nil {
		productDB.Price = productModify.Price
	}
	if productModify.Image != nil {
		productDB.Image = productModify.Image
	}
	if productModify.Category != nil {
		productDB.Category = productModify.Category
	}
	if productModify.Stock != nil {
		productDB.Stock = productModify.Stock
	}

	return productDB
}

func ToDomainList(productsDB []ProductDB) []entities.Product {
	if len(productsDB) == 0 {
		return []entities.Product{}
	}

	result := make([]entities.Product, len(productsDB))
	for i, productDB := range productsDB {
		result[i] = *ToDomain(&productDB)
	}
	return result
}
