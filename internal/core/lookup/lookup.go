// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lookup

import (
	"slices"
	"time"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
)

// Lookup is a row of any name/description reference table.
type Lookup struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Kind is the URL segment naming a lookup table.
type Kind string

const (
	KindMethodOfDiscovery      Kind = "methods-of-discovery"
	KindViolationReason        Kind = "violation-reasons"
	KindDiscoveryBasis         Kind = "discovery-bases"
	KindWorkgroup              Kind = "workgroups"
	KindLetterAction           Kind = "letter-actions"
	KindAdministrationCodex    Kind = "administration-codexes"
	KindInvestigationCommittee Kind = "investigation-committees"
	KindInvestigationType      Kind = "investigation-types"
	KindMilitaryName           Kind = "military-names"
	KindPosition               Kind = "positions"
	KindVehicleBrand           Kind = "vehicle-brands"
	KindTransportCompany       Kind = "transport-companies"
	KindProductCategory        Kind = "product-categories"
	KindUnit                   Kind = "units"
)

// Spec describes the storage and limits of one kind.
type Spec struct {
	Kind    Kind   `json:"kind"`
	Label   string `json:"label"`
	Table   string `json:"-"`
	MaxName int    `json:"max_name_length"`
}

var specs = []Spec{
	{KindMethodOfDiscovery, "Method of discovery", "method_of_discovery", 450},
	{KindViolationReason, "Reason for rule violation", "violation_reason", 450},
	{KindDiscoveryBasis, "Basis for discovery", "discovery_basis", 450},
	{KindWorkgroup, "Workgroup", "workgroup", 450},
	{KindLetterAction, "Letter for action", "letter_action", 450},
	{KindAdministrationCodex, "Administration codex", "administration_codex", 450},
	{KindInvestigationCommittee, "Investigation committee article", "investigation_committee", 450},
	{KindInvestigationType, "Investigation type", "investigation_type", 250},
	{KindMilitaryName, "Military rank", "military_name", 250},
	{KindPosition, "Position", "position", 250},
	{KindVehicleBrand, "Vehicle brand", "vehicle_brand", 100},
	{KindTransportCompany, "Transport company", "transport_company", 255},
	{KindProductCategory, "Product category", "product_category", 250},
	{KindUnit, "Unit of measurement", "unit", 50},
}

// Specs lists every lookup kind in display order.
func Specs() []Spec {
	return slices.Clone(specs)
}

// SpecFor resolves a URL segment. Unknown kinds are a 404, not a 400, since
// the segment addresses a collection.
func SpecFor(kind Kind) (Spec, error) {
	for _, spec := range specs {
		if spec.Kind == kind {
			return spec, nil
		}
	}
	return Spec{}, apperr.NotFound("Lookup kind")
}

// Filter narrows a lookup list.
type Filter struct {
	Query string
}

// Page is one page of a lookup list with its total, the unit the cache stores.
type Page struct {
	Items []*Lookup `json:"items"`
	Total int       `json:"total"`
}

const (
	FieldName        = "name"
	FieldDescription = "description"
)
