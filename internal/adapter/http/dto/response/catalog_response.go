package response

import (
	"facturacion_movil/internal/cache"
	"facturacion_movil/internal/domain/entities"
)

type ProductListResponse struct {
	Products []entities.Product `json:"products"`
	Source   string             `json:"source"`
	Stale    bool               `json:"stale"`
}

func FromProductsResult(res cache.Result[[]entities.Product]) ProductListResponse {
	products := res.Value
	if products == nil {
		products = []entities.Product{}
	}
	return ProductListResponse{
		Products: products,
		Source:   string(res.Tier),
		Stale:    res.Stale,
	}
}

type ClientListResponse struct {
	Clients []entities.Client `json:"clients"`
	Source  string            `json:"source"`
	Stale   bool              `json:"stale"`
}

func FromClientsResult(res cache.Result[[]entities.Client]) ClientListResponse {
	clients := res.Value
	if clients == nil {
		clients = []entities.Client{}
	}
	return ClientListResponse{
		Clients: clients,
		Source:  string(res.Tier),
		Stale:   res.Stale,
	}
}
