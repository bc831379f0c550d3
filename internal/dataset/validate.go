package dataset

import (
	"errors"
	"fmt"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/model"
	"github.com/google/uuid"
)

var (
	ErrInvalidRecord     = errors.New("invalid record")
	ErrDuplicateKey      = errors.New("duplicate primary key")
	ErrDanglingReference = errors.New("order references unknown shoe")
)

// Validate checks the records before they are written. Order lines are soft
// references to the catalog; with strict set every referenced shoe must be
// present in shoes.
func Validate(orders []model.Order, shoes []model.Shoe, strict bool) error {
	var errs []error

	known := make(map[string]bool, len(shoes))
	for _, s := range shoes {
		if err := checkID("shoe", s.ShoeID); err != nil {
			errs = append(errs, err)
		}
		if known[s.ShoeID] {
			errs = append(errs, fmt.Errorf("%w: shoe %s", ErrDuplicateKey, s.ShoeID))
		}
		known[s.ShoeID] = true
		if s.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("%w: shoe %s has negative price %s", ErrInvalidRecord, s.ShoeID, s.Price))
		}
	}

	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		if err := checkID("order", o.OrderID); err != nil {
			errs = append(errs, err)
		}
		if seen[o.OrderID] {
			errs = append(errs, fmt.Errorf("%w: order %s", ErrDuplicateKey, o.OrderID))
		}
		seen[o.OrderID] = true
		if len(o.Lines) == 0 {
			errs = append(errs, fmt.Errorf("%w: order %s has no lines", ErrInvalidRecord, o.OrderID))
		}
		for _, l := range o.Lines {
			if l.Size <= 0 {
				errs = append(errs, fmt.Errorf("%w: order %s has size %d", ErrInvalidRecord, o.OrderID, l.Size))
			}
			if strict && !known[l.ShoeID] {
				errs = append(errs, fmt.Errorf("%w: order %s -> %s", ErrDanglingReference, o.OrderID, l.ShoeID))
			}
		}
	}

	return errors.Join(errs...)
}

// DanglingReferences lists order line shoe IDs missing from the catalog.
func DanglingReferences(orders []model.Order, shoes []model.Shoe) []string {
	known := make(map[string]bool, len(shoes))
	for _, s := range shoes {
		known[s.ShoeID] = true
	}
	var missing []string
	for _, o := range orders {
		for _, l := range o.Lines {
			if !known[l.ShoeID] {
				missing = append(missing, l.ShoeID)
			}
		}
	}
	return missing
}

func checkID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s id %q is not a uuid", ErrInvalidRecord, kind, id)
	}
	return nil
}
