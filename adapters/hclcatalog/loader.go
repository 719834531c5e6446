// Package hclcatalog loads an operator catalog from an HCL file.
//
// A file holds one operator block per operator, labelled with its ID:
//
//	operator "mts" {
//	  name    = "MTS"
//	  speed   = "высокая"
//	  quality = "хорошее"
//	  prices  = [299, 499, 899]
//	}
//
// Tariffs are named "Тариф 1".."Тариф N" after the prices, in order.
package hclcatalog

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"mobile-tariffs/core/catalog"
	"mobile-tariffs/internal/errors"
	"mobile-tariffs/internal/logging"
)

type fileSchema struct {
	Operators []operatorBlock `hcl:"operator,block"`
}

type operatorBlock struct {
	ID      string  `hcl:"id,label"`
	Name    string  `hcl:"name"`
	Speed   string  `hcl:"speed,optional"`
	Quality string  `hcl:"quality,optional"`
	Prices  []int64 `hcl:"prices"`
}

// Loader decodes catalog files. It holds no state between calls.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a new catalog loader
func NewLoader() *Loader {
	return &Loader{
		log: logging.Named("hclcatalog"),
	}
}

// LoadFile reads and decodes the catalog at path
func (l *Loader) LoadFile(path string) (*catalog.Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to read catalog file", err).WithContext("path", path)
	}
	return l.Load(src, path)
}

// Load decodes catalog source. filename is only used in diagnostics.
// Operator IDs are stored uppercase, like the built-in seed.
func (l *Loader) Load(src []byte, filename string) (*catalog.Catalog, error) {
	// hclparse.Parser caches files by name, so each load gets its own.
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse catalog", diags).WithContext("file", filename)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode catalog", diags).WithContext("file", filename)
	}

	if len(schema.Operators) == 0 {
		return nil, errors.Parsing("invalid catalog", stderrors.New("no operator blocks")).WithContext("file", filename)
	}

	ops := make([]catalog.Operator, 0, len(schema.Operators))
	for _, block := range schema.Operators {
		ops = append(ops, catalog.NewOperator(strings.ToUpper(block.ID), block.Name, block.Speed, block.Quality, block.Prices...))
	}

	c, err := catalog.New(ops...)
	if err != nil {
		return nil, errors.Parsing("invalid catalog", err).WithContext("file", filename)
	}

	if errs := c.Validate(catalog.DefaultValidationRules()); len(errs) > 0 {
		return nil, errors.Parsing("invalid catalog", stderrors.Join(errs...)).WithContext("file", filename)
	}

	l.log.Debug("catalog loaded", zap.String("file", filename), zap.Int("operators", c.Len()))
	return c, nil
}
