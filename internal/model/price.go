package model

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Price is an exact decimal currency amount. It is stored as a DynamoDB
// number and a JSON number literal built from its decimal string, so it never
// goes through float64.
type Price struct {
	d decimal.Decimal
}

func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{d: d}, nil
}

// MustPrice is ParsePrice for literals.
func MustPrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the exact decimal representation, e.g. "139.99".
func (p Price) String() string { return p.d.String() }

// Display returns the amount with two fraction digits.
func (p Price) Display() string { return p.d.StringFixed(2) }

func (p Price) Equal(o Price) bool { return p.d.Equal(o.d) }

func (p Price) Cmp(o Price) int { return p.d.Cmp(o.d) }

func (p Price) IsNegative() bool { return p.d.IsNegative() }

func (p Price) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: p.d.String()}, nil
}

func (p *Price) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		*p = Price{}
		return nil
	default:
		return fmt.Errorf("unsupported attribute type %T for price", av)
	}
	parsed, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.d.String()), nil
}

func (p *Price) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	if raw == "null" {
		*p = Price{}
		return nil
	}
	parsed, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
