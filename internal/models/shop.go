package models

type AddProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       *int   `json:"price"`
}

type AddProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

type BuyRequest struct {
	ProductID uint `json:"productId"`
}

type PurchaseResponse struct {
	Message string  `json:"message"`
	Kisses  int     `json:"kisses"`
	Product Product `json:"product"`
}
