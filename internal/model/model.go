package model

import (
	"fmt"
	"slices"
)

// Primary key attribute names of the two seeded tables.
const (
	OrderKey = "OrderId"
	ShoeKey  = "ShoeId"
)

type Customer struct {
	FullName            string `dynamodbav:"FullName" json:"FullName"`
	EmailAddress        string `dynamodbav:"EmailAddress" json:"EmailAddress"`
	PhoneNumber         string `dynamodbav:"PhoneNumber" json:"PhoneNumber"`
	StreetAddress       string `dynamodbav:"StreetAddress" json:"StreetAddress"`
	CityTown            string `dynamodbav:"CityTown" json:"CityTown"`
	StateProvinceRegion string `dynamodbav:"StateProvinceRegion" json:"StateProvinceRegion"`
	PostCode            string `dynamodbav:"PostCode" json:"PostCode"`
	Country             string `dynamodbav:"Country" json:"Country"`
}

// OrderLine is one requested shoe in a given size.
type OrderLine struct {
	Size   int
	ShoeID string
}

type Order struct {
	OrderID string
	Customer
	Lines []OrderLine
}

// OrderItem is the stored layout of an order. Sizes and shoe IDs are kept as
// two parallel lists so existing readers of the table keep working.
type OrderItem struct {
	OrderID string `dynamodbav:"OrderId" json:"OrderId"`
	Customer
	Size   []int    `dynamodbav:"Size" json:"Size"`
	ShoeID []string `dynamodbav:"ShoeId" json:"ShoeId"`
}

func (i OrderItem) PrimaryKey() string { return i.OrderID }

// Item converts the order into its stored layout.
func (o Order) Item() OrderItem {
	item := OrderItem{
		OrderID:  o.OrderID,
		Customer: o.Customer,
		Size:     make([]int, 0, len(o.Lines)),
		ShoeID:   make([]string, 0, len(o.Lines)),
	}
	for _, l := range o.Lines {
		item.Size = append(item.Size, l.Size)
		item.ShoeID = append(item.ShoeID, l.ShoeID)
	}
	return item
}

// Order pairs the stored size and shoe lists back into order lines. The lists
// must have the same length.
func (i OrderItem) Order() (Order, error) {
	if len(i.Size) != len(i.ShoeID) {
		return Order{}, fmt.Errorf("order %s: %d sizes for %d shoe ids", i.OrderID, len(i.Size), len(i.ShoeID))
	}
	o := Order{
		OrderID:  i.OrderID,
		Customer: i.Customer,
		Lines:    make([]OrderLine, len(i.Size)),
	}
	for n := range i.Size {
		o.Lines[n] = OrderLine{Size: i.Size[n], ShoeID: i.ShoeID[n]}
	}
	return o, nil
}

func (o Order) Equal(other Order) bool {
	return o.OrderID == other.OrderID &&
		o.Customer == other.Customer &&
		slices.Equal(o.Lines, other.Lines)
}

// Shoe is a catalog item and is stored as-is.
type Shoe struct {
	ShoeID         string   `dynamodbav:"ShoeId" json:"ShoeId"`
	Brand          string   `dynamodbav:"Brand" json:"Brand"`
	Model          string   `dynamodbav:"Model" json:"Model"`
	AvailableSizes []string `dynamodbav:"AvailableSizes" json:"AvailableSizes"`
	Price          Price    `dynamodbav:"Price" json:"Price"`
	Image          string   `dynamodbav:"Image" json:"Image"`
}

func (s Shoe) PrimaryKey() string { return s.ShoeID }

func (s Shoe) Equal(other Shoe) bool {
	return s.ShoeID == other.ShoeID &&
		s.Brand == other.Brand &&
		s.Model == other.Model &&
		slices.Equal(s.AvailableSizes, other.AvailableSizes) &&
		s.Price.Equal(other.Price) &&
		s.Image == other.Image
}

// Name is the display name, brand followed by model.
func (s Shoe) Name() string {
	return s.Brand + " " + s.Model
}
