package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/model"
)

// Shoe is the storefront record shape, with the price as a decimal string.
type Shoe struct {
	ShoeID         string   `json:"ShoeId" yaml:"ShoeId"`
	Brand          string   `json:"Brand" yaml:"Brand"`
	Model          string   `json:"Model" yaml:"Model"`
	AvailableSizes []string `json:"AvailableSizes" yaml:"AvailableSizes"`
	Price          string   `json:"Price" yaml:"Price"`
	Image          string   `json:"Image" yaml:"Image"`
}

func FromModel(shoes []model.Shoe) []Shoe {
	out := make([]Shoe, 0, len(shoes))
	for _, s := range shoes {
		out = append(out, Shoe{
			ShoeID:         s.ShoeID,
			Brand:          s.Brand,
			Model:          s.Model,
			AvailableSizes: s.AvailableSizes,
			Price:          s.Price.Display(),
			Image:          s.Image,
		})
	}
	return out
}

// Write encodes shoes as "json" or "yaml".
func Write(w io.Writer, shoes []model.Shoe, format string) error {
	records := FromModel(shoes)
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to marshal data: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to marshal data: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to marshal data: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
	return nil
}

// ToFile writes the export to path, creating parent directories.
func ToFile(path string, shoes []model.Shoe, format string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Write(file, shoes, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
