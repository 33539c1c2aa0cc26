package config

import (
	"delivery-fixture-generator/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadAnchors reads an anchor table from a JSON array file.
func LoadAnchors(jsonPath string) ([]domain.Anchor, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load anchors: read %q: %w", jsonPath, err)
	}

	var data []domain.Anchor
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load anchors: parse json: %w", err)
	}

	for i, a := range data {
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("load anchors: item at index %d: name cannot be empty", i+1)
		}
		if !a.Coordinates().Valid() {
			return nil, fmt.Errorf("load anchors: item %q: coordinates out of range", a.Name)
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("load anchors: %q: %w", jsonPath, ErrNoAnchors)
	}

	return data, nil
}

// LoadCustomers reads a customer seed list from a JSON array file.
func LoadCustomers(jsonPath string) ([]CustomerSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load customers: read %q: %w", jsonPath, err)
	}

	var data []CustomerSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load customers: parse json: %w", err)
	}

	for i, c := range data {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("load customers: item at index %d: name cannot be empty", i+1)
		}
		if !domain.CustomerCategory(c.Category).Valid() {
			return nil, fmt.Errorf("load customers: item %q: unknown category %q", c.Name, c.Category)
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("load customers: %q: %w", jsonPath, ErrNoCustomers)
	}

	return data, nil
}
