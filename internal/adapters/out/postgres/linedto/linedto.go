// Package linedto maps catalog service lines to the JSON documents stored in
// the carts and orders tables.
package linedto

import (
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ServiceLineDTO is one service line as stored in a jsonb column.
// TotalPrice is denormalised for readers of the raw table.
type ServiceLineDTO struct {
	Service    string          `json:"service"`
	Items      []LineItemDTO   `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type LineItemDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func FromDomain(line catalog.ServiceLine) ServiceLineDTO {
	items := make([]LineItemDTO, 0, len(line.Items()))
	for _, item := range line.Items() {
		items = append(items, LineItemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
		})
	}

	return ServiceLineDTO{
		Service:    line.Service().String(),
		Items:      items,
		TotalPrice: line.TotalPrice().Amount(),
	}
}

// ToDomain rebuilds the line. The stored total is ignored and recomputed.
func ToDomain(dto ServiceLineDTO) (catalog.ServiceLine, error) {
	service, err := catalog.ParseServiceType(dto.Service)
	if err != nil {
		return catalog.ServiceLine{}, err
	}

	items := make([]catalog.LineItem, 0, len(dto.Items))
	for _, raw := range dto.Items {
		price, err := kernel.NewMoney(raw.Price)
		if err != nil {
			return catalog.ServiceLine{}, err
		}
		item, err := catalog.NewLineItem(raw.Name, raw.Quantity, price)
		if err != nil {
			return catalog.ServiceLine{}, err
		}
		items = append(items, item)
	}

	return catalog.NewServiceLine(service, items)
}
