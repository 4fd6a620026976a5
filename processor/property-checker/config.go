package propertychecker

import (
	"fmt"
	"reflect"
	"time"

	"github.com/c360studio/semstreams/component"
)

// propertyCheckerSchema defines the configuration schema.
var propertyCheckerSchema = component.GenerateConfigSchema(reflect.TypeOf(Config{}))

// Config holds configuration for the property-checker processor component.
type Config struct {
	Ports          *component.PortConfig `json:"ports" schema:"type:ports,description:Port configuration,category:basic"`
	CatalogPath    string                `json:"catalog_path" schema:"type:string,description:YAML rule catalog path (empty = built-in DCAT catalog),category:basic"`
	RefDataBaseURL string                `json:"refdata_base_url" schema:"type:string,description:Reference-data service root (empty = public service),category:basic"`
	RefDataAPIKey  string                `json:"refdata_api_key" schema:"type:string,description:X-API-KEY header for the reference-data service,category:advanced"`
	RefDataTTL     string                `json:"refdata_ttl" schema:"type:string,description:Reference-data cache TTL (Go duration),category:advanced,default:24h"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.RefDataTTL != "" {
		if _, err := time.ParseDuration(c.RefDataTTL); err != nil {
			return fmt.Errorf("invalid refdata_ttl: %w", err)
		}
	}
	return nil
}

// GetRefDataTTL returns the configured cache TTL with a default fallback.
func (c *Config) GetRefDataTTL() time.Duration {
	if c.RefDataTTL != "" {
		if ttl, err := time.ParseDuration(c.RefDataTTL); err == nil && ttl > 0 {
			return ttl
		}
	}
	return 24 * time.Hour
}

// DefaultConfig returns the default configuration for property-checker.
func DefaultConfig() Config {
	return Config{
		Ports: &component.PortConfig{
			Inputs: []component.PortDefinition{
				{
					Name:        "harvested_in",
					Type:        "jetstream",
					Subject:     "dataset.harvested.events",
					StreamName:  "DATASET",
					Required:    true,
					Description: "Harvested dataset graphs awaiting assessment",
				},
			},
			Outputs: []component.PortDefinition{
				{
					Name:        "checked_out",
					Type:        "jetstream",
					Subject:     "mqa.properties.checked",
					Required:    true,
					Description: "Quality measurement graphs for downstream scoring",
				},
			},
		},
		RefDataTTL: "24h",
	}
}
