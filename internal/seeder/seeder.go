package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/dataset"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/model"
)

// ErrMismatch reports stored records that differ from the dataset.
var ErrMismatch = errors.New("stored records differ from the dataset")

type Seeder struct {
	orders database.Table
	shoes  database.Table

	orderData []model.Order
	shoeData  []model.Shoe
	strict    bool
}

type Option func(*Seeder)

// WithOrders replaces the compiled-in orders.
func WithOrders(orders []model.Order) Option {
	return func(s *Seeder) { s.orderData = orders }
}

// WithShoes replaces the compiled-in catalog.
func WithShoes(shoes []model.Shoe) Option {
	return func(s *Seeder) { s.shoeData = shoes }
}

// WithStrict rejects orders that reference shoes outside the catalog.
func WithStrict(strict bool) Option {
	return func(s *Seeder) { s.strict = strict }
}

func New(orders, shoes database.Table, opts ...Option) *Seeder {
	s := &Seeder{
		orders:    orders,
		shoes:     shoes,
		orderData: dataset.Orders(),
		shoeData:  dataset.Shoes(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Report struct {
	Orders   int
	Shoes    int
	Duration time.Duration

	// Mismatched lists the keys Verify found missing or different.
	Mismatched []string
}

// Seed writes every order, then every shoe, each table through one batch.
// A failure stops the run; earlier batches are not undone.
func (s *Seeder) Seed(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{}
	color.Cyan("🌱 Starting table seeding...")

	if err := dataset.Validate(s.orderData, s.shoeData, s.strict); err != nil {
		return report, fmt.Errorf("invalid dataset: %w", err)
	}
	if !s.strict {
		if dangling := dataset.DanglingReferences(s.orderData, s.shoeData); len(dangling) > 0 {
			color.Yellow("⚠️  Orders reference unknown shoes: %s", strings.Join(dangling, ", "))
		}
	}

	err := database.WithBatch(ctx, s.orders, func(w database.Writer) error {
		for _, o := range s.orderData {
			if err := w.Put(ctx, o.Item()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("failed to seed table %s: %w", s.orders.Name(), err)
	}
	report.Orders = len(s.orderData)
	color.Green("📦 %s: %d orders written", s.orders.Name(), report.Orders)

	err = database.WithBatch(ctx, s.shoes, func(w database.Writer) error {
		for _, shoe := range s.shoeData {
			if err := w.Put(ctx, shoe); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("failed to seed table %s: %w", s.shoes.Name(), err)
	}
	report.Shoes = len(s.shoeData)
	color.Green("👟 %s: %d shoes written", s.shoes.Name(), report.Shoes)

	report.Duration = time.Since(start)
	return report, nil
}

// Verify reads every record back by its key and compares it to the dataset.
func (s *Seeder) Verify(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{}
	color.Cyan("🔍 Verifying seeded tables...")

	for _, want := range s.orderData {
		var item model.OrderItem
		ok, err := s.read(ctx, s.orders, want.OrderID, &item)
		if err != nil {
			return report, err
		}
		if ok {
			got, err := item.Order()
			ok = err == nil && got.Equal(want)
		}
		if !ok {
			report.Mismatched = append(report.Mismatched, s.orders.Name()+"/"+want.OrderID)
			continue
		}
		report.Orders++
	}

	for _, want := range s.shoeData {
		var got model.Shoe
		ok, err := s.read(ctx, s.shoes, want.ShoeID, &got)
		if err != nil {
			return report, err
		}
		if !ok || !got.Equal(want) {
			report.Mismatched = append(report.Mismatched, s.shoes.Name()+"/"+want.ShoeID)
			continue
		}
		report.Shoes++
	}

	report.Duration = time.Since(start)
	if len(report.Mismatched) > 0 {
		return report, fmt.Errorf("%w: %s", ErrMismatch, strings.Join(report.Mismatched, ", "))
	}
	color.Green("✅ %d orders and %d shoes match", report.Orders, report.Shoes)
	return report, nil
}

// read reports false when the record is absent or cannot be decoded.
func (s *Seeder) read(ctx context.Context, t database.Table, key string, out any) (bool, error) {
	err := t.Get(ctx, key, out)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, database.ErrItemNotFound), errors.Is(err, database.ErrInvalidItem):
		return false, nil
	default:
		return false, fmt.Errorf("failed to read %s: %w", t.Name(), err)
	}
}
