package grouping

import (
	"github.com/de-tools/budget-atlas/pkg/models/domain"
	"github.com/de-tools/budget-atlas/pkg/models/store"
)

const (
	LevelClassification = "classification"
	LevelSubClass       = "subClass"
	LevelGroup          = "group"
	LevelObject         = "object"

	LevelRegion   = "region"
	LevelProvince = "province"
	LevelCity     = "cityMunicipality"
	LevelBarangay = "barangay"

	LevelDepartment    = "department"
	LevelAgency        = "agency"
	LevelOperatingUnit = "operatingUnit"

	LevelFundCluster   = "fundCluster"
	LevelFundingSource = "fundingSource"

	RefFinancingSource = "financingSource"
	RefAuthorization   = "authorization"
	RefFundCategory    = "fundCategory"
)

// ExpenseSpec groups expense rows Classification > SubClass > Group > Object with
// NEP and GAA amounts summed side by side.
func ExpenseSpec() Spec {
	return Spec{
		Levels: []Level{
			{Name: LevelClassification, KeyField: "classificationCode", LabelField: "classificationDescription"},
			{Name: LevelSubClass, KeyField: "subClassCode", LabelField: "subClassDescription"},
			{Name: LevelGroup, KeyField: "groupCode", LabelField: "groupDescription"},
			{Name: LevelObject, KeyField: "objectCode", LabelField: "objectDescription"},
		},
		Measures: DualMeasures("nepBudget", "gaaBudget"),
		Mode:     Strict,
		Compare:  NEPvsGAA,
	}
}

// OrganizationBudgetSpec groups per-type budget rows Department > Agency > OperatingUnit.
// Records whose agency or operating unit did not match still show their department.
func OrganizationBudgetSpec() Spec {
	return Spec{
		Levels: []Level{
			{Name: LevelDepartment, KeyField: "departmentCode", LabelField: "departmentDescription"},
			{Name: LevelAgency, KeyField: "agencyCode", LabelField: "agencyDescription"},
			{Name: LevelOperatingUnit, KeyField: "operatingUnitCode", LabelField: "operatingUnitDescription"},
		},
		Measures: DiscriminatedMeasures("budgetType", "amount"),
		Mode:     Partial,
		Compare:  NEPvsGAA,
	}
}

// FundingSpec groups fund clusters and their funding sources. Clusters without
// funding sources are kept.
func FundingSpec() Spec {
	return Spec{
		Levels: []Level{
			{Name: LevelFundCluster, KeyField: "clusterCode", LabelField: "clusterDescription"},
			{
				Name:       LevelFundingSource,
				KeyField:   "fundingSourceCode",
				LabelField: "fundingSourceDescription",
				References: []Reference{
					{Name: RefFinancingSource, CodeField: "financingSourceCode", DescriptionField: "financingSourceDescription"},
					{Name: RefAuthorization, CodeField: "authorizationCode", DescriptionField: "authorizationDescription"},
					{Name: RefFundCategory, CodeField: "fundCategoryCode", DescriptionField: "fundCategoryDescription"},
				},
			},
		},
		Mode: Partial,
	}
}

// LocationSpec links Region > Province > City/Municipality > Barangay. Cities reference
// the last two characters of their province code, barangays belong to the city whose
// code prefixes their own.
func LocationSpec(regions, provinces, cities, barangays []store.Row) LinkedSpec {
	return LinkedSpec{
		ScopeField: "regionCode",
		Levels: []LinkedLevel{
			{
				Level: Level{Name: LevelRegion, KeyField: "code", LabelField: "description"},
				Rows:  regions,
			},
			{
				Level: Level{
					Name:       LevelProvince,
					KeyField:   "psgcCode",
					LabelField: "description",
					Attributes: map[string]string{"regionCode": "regionCode"},
				},
				Rows:     provinces,
				ParentOf: func(row store.Row) string { return row.String("regionCode") },
				LinkOf:   provinceKeyOf,
			},
			{
				Level: Level{
					Name:       LevelCity,
					KeyField:   "psgcCode",
					LabelField: "description",
					Attributes: map[string]string{"provinceCode": "provinceCode"},
				},
				Rows:     cities,
				ParentOf: func(row store.Row) string { return row.String("provinceCode") },
			},
			{
				Level: Level{
					Name:       LevelBarangay,
					KeyField:   "psgcCode",
					LabelField: "description",
					Attributes: map[string]string{"status": "status"},
				},
				Rows:     barangays,
				ParentOf: func(row store.Row) string { return cityKeyOf(row.String("psgcCode")) },
			},
		},
	}
}

// OrganizationSpec links Department > Agency > OperatingUnit. An operating unit's
// agency is read from its UACS code.
func OrganizationSpec(departments, agencies, operatingUnits []store.Row) LinkedSpec {
	hasCodes := func(row store.Row) bool {
		return row.String("code") != "" && row.String("uacsCode") != ""
	}
	return LinkedSpec{
		ScopeField: "departmentCode",
		Levels: []LinkedLevel{
			{
				Level: Level{
					Name:       LevelDepartment,
					KeyField:   "code",
					LabelField: "description",
					Attributes: map[string]string{"abbreviation": "abbreviation"},
				},
				Rows: departments,
			},
			{
				Level: Level{
					Name:       LevelAgency,
					KeyField:   "code",
					LabelField: "description",
					Attributes: map[string]string{"uacsCode": "uacsCode", "departmentCode": "agencyDepartmentCode"},
				},
				Rows:     agencies,
				ParentOf: func(row store.Row) string { return row.String("departmentCode") },
				Keep:     hasCodes,
			},
			{
				Level: Level{
					Name:       LevelOperatingUnit,
					KeyField:   "uacsCode",
					LabelField: "description",
					Attributes: map[string]string{
						"code":        "code",
						"classCode":   "classCode",
						"lowerOuCode": "lowerOuCode",
					},
				},
				Rows:     operatingUnits,
				ParentOf: func(row store.Row) string { return agencyKeyOf(row.String("uacsCode")) },
				Keep:     hasCodes,
			},
		},
	}
}

// DistinctReferences counts distinct present reference codes on nodes of one level.
func DistinctReferences(forest []domain.TreeNode, level, ref string) int {
	seen := make(map[string]struct{})
	for _, root := range forest {
		root.Walk(func(n domain.TreeNode, _ int) {
			if n.Level != level {
				return
			}
			if r, ok := n.References[ref].Get(); ok {
				seen[r.Code] = struct{}{}
			}
		})
	}
	return len(seen)
}
