// Package fixtures holds the demo records shown on the listing pages.
package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/transflower/firstwebapp/internal/domain"
)

//go:embed demo.yaml
var demoYAML []byte

type Demo struct {
	catalog   []domain.CatalogItem
	flowers   []domain.Product
	customers []domain.Customer
}

type demoFile struct {
	Catalog   []domain.CatalogItem `yaml:"catalog"`
	Flowers   []domain.Product     `yaml:"flowers"`
	Customers []domain.Customer    `yaml:"customers"`
}

func Load() (*Demo, error) {
	return Parse(demoYAML)
}

// MustLoad is Load for tests; it panics if the embedded file is malformed.
func MustLoad() *Demo {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// Parse decodes a fixture document. Unknown keys are rejected.
func Parse(raw []byte) (*Demo, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var f demoFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode demo fixtures: %w", err)
	}
	return &Demo{catalog: f.Catalog, flowers: f.Flowers, customers: f.Customers}, nil
}

func (d *Demo) Catalog() []domain.CatalogItem { return slices.Clone(d.catalog) }

func (d *Demo) Flowers() []domain.Product { return slices.Clone(d.flowers) }

func (d *Demo) Customers() []domain.Customer { return slices.Clone(d.customers) }
