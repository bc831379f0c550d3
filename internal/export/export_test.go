package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/dataset"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/model"
)

func TestJSONPriceIsString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, dataset.Shoes()[:1], "json"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "139.99", got[0]["Price"])
	assert.Equal(t, "ad8bd387-511e-44b4-8c2f-c1902bc8b764", got[0]["ShoeId"])
	assert.Equal(t, []any{"38", "40", "42", "44", "46"}, got[0]["AvailableSizes"])
}

func TestPriceKeepsTwoDecimals(t *testing.T) {
	records := FromModel([]model.Shoe{{ShoeID: "a", Price: model.MustPrice("120")}})
	assert.Equal(t, "120.00", records[0].Price)
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, dataset.Shoes(), "yaml"))

	var got []Shoe
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 24)
	assert.Equal(t, "New Balance", got[1].Brand)
	assert.Equal(t, "109.99", got[1].Price)
}

func TestUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, nil, "csv"))
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "data.json")
	require.NoError(t, ToFile(path, dataset.Shoes(), "json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []Shoe
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Len(t, got, 24)
}
