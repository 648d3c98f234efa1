package services

import (
	"errors"
	"time"

	"alphaflow-backend/models"
	"alphaflow-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInsufficientStock = errors.New("insufficient stock")

const (
	SaleCategory    = "Sales"
	WalkInSaleLabel = "Walk-in"
)

type ItemType string

const (
	ItemProduct ItemType = "PRODUCT"
	ItemService ItemType = "SERVICE"
)

type CartItem struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Type     ItemType        `json:"type"`
}

// Cart accumulates line items before checkout. Stock is enforced here, at
// add time; FinalizeSale assumes the invariant already holds.
type Cart struct {
	Items []CartItem
}

func (c *Cart) find(id uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// AddProduct adds one unit of p, rejecting the add with no state change when
// it would exceed the available stock.
func (c *Cart) AddProduct(p models.Product) error {
	if item := c.find(p.ID); item != nil {
		if item.Quantity+1 > p.Stock {
			return ErrInsufficientStock
		}
		item.Quantity++
		return nil
	}
	if p.Stock < 1 {
		return ErrInsufficientStock
	}
	c.Items = append(c.Items, CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
		Type:     ItemProduct,
	})
	return nil
}

// AddService adds one unit of sv. Services have no stock to enforce.
func (c *Cart) AddService(sv models.Service) {
	if item := c.find(sv.ID); item != nil {
		item.Quantity++
		return
	}
	c.Items = append(c.Items, CartItem{
		ID:       sv.ID,
		Name:     sv.Name,
		Price:    sv.Price,
		Quantity: 1,
		Type:     ItemService,
	})
}

// UpdateQuantity adjusts a line by delta, clamping at 1 and at the product's
// stock ceiling. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id uuid.UUID, delta int, products map[uuid.UUID]models.Product) error {
	item := c.find(id)
	if item == nil {
		return nil
	}
	newQty := item.Quantity + delta
	if newQty < 1 {
		return nil
	}
	if item.Type == ItemProduct {
		if p, ok := products[id]; ok && newQty > p.Stock {
			return ErrInsufficientStock
		}
	}
	item.Quantity = newQty
	return nil
}

func (c *Cart) Remove(id uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// SaleResult is the side-effect set of a finalized sale, applied atomically
// by the state container.
type SaleResult struct {
	StockUpdates  map[uuid.UUID]int // product id -> new stock level
	Record        models.FinancialRecord
	ClientUpdate  *models.Client
	PaymentMethod string
	Total         decimal.Decimal
}

// FinalizeSale derives the three effects of completing a sale: product stock
// decrements, exactly one INCOME ledger record, and the optional client spend
// update. It does not re-validate stock; the cart invariant is assumed.
func FinalizeSale(cart Cart, client *models.Client, paymentMethod string, products map[uuid.UUID]models.Product, now time.Time) SaleResult {
	total := cart.Total()

	stock := make(map[uuid.UUID]int)
	for _, item := range cart.Items {
		if item.Type != ItemProduct {
			continue
		}
		if p, ok := products[item.ID]; ok {
			stock[p.ID] = p.Stock - item.Quantity
		}
	}

	buyer := WalkInSaleLabel
	if client != nil {
		buyer = client.Name
	}
	record := models.FinancialRecord{
		ID:          uuid.New(),
		Date:        now,
		Description: "POS Sale - " + buyer,
		Amount:      total,
		Type:        models.RecordIncome,
		Category:    SaleCategory,
	}

	result := SaleResult{
		StockUpdates:  stock,
		Record:        record,
		PaymentMethod: paymentMethod,
		Total:         total,
	}
	if client != nil {
		updated := *client
		updated.TotalSpent = updated.TotalSpent.Add(total)
		visit := utils.BeginningOfDay(now)
		updated.LastVisit = &visit
		result.ClientUpdate = &updated
	}
	return result
}
