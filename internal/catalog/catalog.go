package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixtures []byte

// Sale is one row of the sales table. Amount and MeetingDate are display
// strings.
type Sale struct {
	ID          int     `yaml:"id"`
	Company     string  `yaml:"company"`
	Client      string  `yaml:"client"`
	Shipment    int     `yaml:"shipment"`
	Amount      string  `yaml:"amount"`
	MeetingDate string  `yaml:"meeting_date"`
	Status      string  `yaml:"status"`
	Rating      float64 `yaml:"rating"`
}

// Customer is one row of the customer table.
type Customer struct {
	ID       int    `yaml:"id"`
	Company  string `yaml:"company"`
	Name     string `yaml:"name"`
	Contact  string `yaml:"contact"`
	Email    string `yaml:"email"`
	Address  string `yaml:"address"`
	Status   string `yaml:"status"`
	JoinDate string `yaml:"join_date"`
}

// Stat is a headline card. Change and ChangePercent are optional.
type Stat struct {
	Title         string `yaml:"title"`
	Value         string `yaml:"value"`
	Change        string `yaml:"change"`
	ChangePercent string `yaml:"change_percent"`
	Versus        string `yaml:"versus"`
	Accent        string `yaml:"accent"`
	Icon          string `yaml:"icon"`
}

// Source provides the sample data shown on the dashboard.
type Source interface {
	Sales(ctx context.Context) ([]Sale, error)
	Customers(ctx context.Context) ([]Customer, error)
	SalesStats(ctx context.Context) ([]Stat, error)
	CustomerStats(ctx context.Context) ([]Stat, error)
}

// Catalog is an immutable in-memory Source.
type Catalog struct {
	SalesRows     []Sale     `yaml:"sales"`
	CustomerRows  []Customer `yaml:"customers"`
	SalesCards    []Stat     `yaml:"sales_stats"`
	CustomerCards []Stat     `yaml:"customer_stats"`
}

// Load decodes the embedded fixture.
func Load() (*Catalog, error) {
	return Parse(fixtures)
}

// Parse decodes a fixture document. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Join(ErrInvalidFixture, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[int]bool, len(c.SalesRows))
	for _, s := range c.SalesRows {
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate sale id %d", ErrInvalidFixture, s.ID)
		}
		seen[s.ID] = true
	}
	clear(seen)
	for _, cu := range c.CustomerRows {
		if seen[cu.ID] {
			return fmt.Errorf("%w: duplicate customer id %d", ErrInvalidFixture, cu.ID)
		}
		seen[cu.ID] = true
	}
	return nil
}

func (c *Catalog) Sales(context.Context) ([]Sale, error) {
	return c.SalesRows, nil
}

func (c *Catalog) Customers(context.Context) ([]Customer, error) {
	return c.CustomerRows, nil
}

func (c *Catalog) SalesStats(context.Context) ([]Stat, error) {
	return c.SalesCards, nil
}

func (c *Catalog) CustomerStats(context.Context) ([]Stat, error) {
	return c.CustomerCards, nil
}
