// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// LookupTable describes every name/description reference table. All lookup
// kinds share the same column layout and differ only by table name.
type LookupTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// Lookup returns the descriptor of a registry lookup table.
func Lookup(table string) LookupTable {
	return LookupTable{
		Table:       "registry." + table,
		ID:          "id",
		Name:        "name",
		Description: "description",
		CreatedAt:   "created_at",
		UpdatedAt:   "updated_at",
	}
}

func (t LookupTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.CreatedAt, t.UpdatedAt}
}

// Lookup tables referenced by name from other repositories.
var (
	MethodOfDiscovery      = Lookup("method_of_discovery")
	ViolationReason        = Lookup("violation_reason")
	DiscoveryBasis         = Lookup("discovery_basis")
	Workgroup              = Lookup("workgroup")
	LetterAction           = Lookup("letter_action")
	AdministrationCodex    = Lookup("administration_codex")
	InvestigationCommittee = Lookup("investigation_committee")
	InvestigationType      = Lookup("investigation_type")
	MilitaryName           = Lookup("military_name")
	Position               = Lookup("position")
	VehicleBrand           = Lookup("vehicle_brand")
	TransportCompany       = Lookup("transport_company")
	ProductCategory        = Lookup("product_category")
	Unit                   = Lookup("unit")
)
