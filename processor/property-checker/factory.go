package propertychecker

import (
	"fmt"

	"github.com/c360studio/semstreams/component"
)

// RegistryInterface defines the minimal interface needed for registration.
type RegistryInterface interface {
	RegisterWithConfig(component.RegistrationConfig) error
}

// Register registers the property-checker processor with the given registry.
func Register(registry RegistryInterface) error {
	if registry == nil {
		return fmt.Errorf("registry cannot be nil")
	}
	return registry.RegisterWithConfig(component.RegistrationConfig{
		Name:        "property-checker",
		Factory:     NewComponent,
		Schema:      propertyCheckerSchema,
		Type:        "processor",
		Protocol:    "rdf",
		Domain:      "mqa",
		Description: "Evaluates metadata quality rules against harvested dataset graphs",
		Version:     "1.0.0",
	})
}
