package hclcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-tariffs/core/selection"
	"mobile-tariffs/internal/errors"
	"mobile-tariffs/internal/logging"
)

const twoOperators = `
operator "beeline" {
  name    = "Beeline"
  speed   = "средняя"
  quality = "хорошее"
  prices  = [300, 600]
}

operator "mts" {
  name   = "MTS"
  prices = [299, 499, 899]
}
`

func TestMain(m *testing.M) {
	logging.UseNop()
	os.Exit(m.Run())
}

func TestLoadFile(t *testing.T) {
	rq := require.New(t)
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	rq.NoError(os.WriteFile(path, []byte(twoOperators), 0o644))

	c, err := NewLoader().LoadFile(path)
	rq.NoError(err)
	rq.Equal(2, c.Len())

	ops := c.List()
	rq.Equal("Beeline", ops[0].Name)
	rq.Equal("средняя", ops[0].Speed)
	rq.Equal("MTS", ops[1].Name)
	rq.Empty(ops[1].Quality)

	beeline, ok := c.Get("BEELINE")
	rq.True(ok)
	tariffs := beeline.Tariffs()
	rq.Len(tariffs, 2)
	rq.Equal("Тариф 2 - 600 RUB", tariffs[1].String())

	_, err = selection.Select(beeline, 600)
	rq.NoError(err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `operator "x" {`},
		{"missing prices", `operator "x" { name = "X" }`},
		{"unknown attribute", `operator "x" {
  name   = "X"
  prices = [1]
  color  = "red"
}`},
		{"duplicate id", `operator "x" {
  name   = "X"
  prices = [1]
}
operator "X" {
  name   = "Other"
  prices = [2]
}`},
		{"non-positive price", `operator "x" {
  name   = "X"
  prices = [100, 0]
}`},
		{"no tariffs", `operator "x" {
  name   = "X"
  prices = []
}`},
		{"empty file", ``},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Load([]byte(tc.src), tc.name+".hcl")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeParsing), err.Error())
		})
	}
}

func TestLoaderReusedWithSameFilename(t *testing.T) {
	rq := require.New(t)
	loader := NewLoader()

	first, err := loader.Load([]byte(`operator "a" {
  name   = "A"
  prices = [100]
}`), "catalog.hcl")
	rq.NoError(err)
	rq.Equal("A", first.List()[0].Name)

	second, err := loader.Load([]byte(`operator "b" {
  name   = "B"
  prices = [200]
}`), "catalog.hcl")
	rq.NoError(err)
	rq.Equal(1, second.Len())
	rq.Equal("B", second.List()[0].Name)

	_, ok := second.Get("a")
	rq.False(ok)
}

func TestLoaderRecoversAfterParseError(t *testing.T) {
	rq := require.New(t)
	loader := NewLoader()

	_, err := loader.Load([]byte(`operator "a" {`), "catalog.hcl")
	rq.Error(err)

	_, err = loader.Load([]byte(`operator "a" {`), "catalog.hcl")
	rq.Error(err, "broken source must fail on every load")

	c, err := loader.Load([]byte(`operator "a" {
  name   = "A"
  prices = [100]
}`), "catalog.hcl")
	rq.NoError(err)
	rq.Equal("A", c.List()[0].Name)
}

func TestOperatorIDsAreUppercased(t *testing.T) {
	c, err := NewLoader().Load([]byte(twoOperators), "ids.hcl")
	require.NoError(t, err)

	ops := c.List()
	assert.Equal(t, "BEELINE", ops[0].ID)
	assert.Equal(t, "MTS", ops[1].ID)
}
