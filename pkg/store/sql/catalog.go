package sql

import "github.com/de-tools/budget-atlas/pkg/store/query"

const (
	sumByType = `
	COALESCE(SUM(CASE WHEN br.budget_type = 'NEP' THEN br.amount END), 0) AS nepBudget,
	COALESCE(SUM(CASE WHEN br.budget_type = 'GAA' THEN br.amount END), 0) AS gaaBudget`

	recordOrg = `
	FROM budget_records br
	JOIN organizations org ON org.uacs_code = br.org_uacs_code`
)

// Catalog holds the SQL text for every named query, written against the mirror schema
// created by the duckdb package. Entity columns use the entity__field naming.
var Catalog = query.Catalog{
	query.Ping: `SELECT 1 AS ok`,

	query.BudgetTotal: `
		SELECT COALESCE(SUM(br.amount), 0) AS total, COUNT(*) AS recordCount
		FROM budget_records br
		LEFT JOIN organizations org ON org.uacs_code = br.org_uacs_code
		WHERE br.fiscal_year = $year AND br.budget_type = $type
		  AND ($department = '' OR org.department_code = $department)
		  AND ($region = '' OR br.region_code = $region)`,

	query.BudgetByDepartment: `
		SELECT d.code AS departmentCode,
		       d.description AS departmentName,
		       SUM(br.amount) AS totalBudget,
		       COUNT(*) AS recordCount` + recordOrg + `
		JOIN departments d ON d.code = org.department_code
		WHERE br.fiscal_year = $year AND br.budget_type = $type
		GROUP BY d.code, d.description
		ORDER BY totalBudget DESC
		LIMIT $limit`,

	query.BudgetNepGaaByDept: `
		SELECT d.code AS departmentCode,
		       d.description AS departmentName,
		       COALESCE(SUM(CASE WHEN br.budget_type = 'NEP' THEN br.amount END), 0) AS nepTotal,
		       COUNT(CASE WHEN br.budget_type = 'NEP' THEN 1 END) AS nepCount,
		       COALESCE(SUM(CASE WHEN br.budget_type = 'GAA' THEN br.amount END), 0) AS gaaTotal,
		       COUNT(CASE WHEN br.budget_type = 'GAA' THEN 1 END) AS gaaCount` + recordOrg + `
		JOIN departments d ON d.code = org.department_code
		WHERE br.fiscal_year = $year
		GROUP BY d.code, d.description
		HAVING COALESCE(SUM(CASE WHEN br.budget_type = 'NEP' THEN br.amount END), 0) > 0
		    OR COALESCE(SUM(CASE WHEN br.budget_type = 'GAA' THEN br.amount END), 0) > 0
		ORDER BY gaaTotal DESC`,

	query.BudgetCompareNepGaa: `
		SELECT COALESCE(SUM(CASE WHEN br.budget_type = 'NEP' THEN br.amount END), 0) AS nepTotal,
		       COUNT(CASE WHEN br.budget_type = 'NEP' THEN 1 END) AS nepCount,
		       COALESCE(SUM(CASE WHEN br.budget_type = 'GAA' THEN br.amount END), 0) AS gaaTotal,
		       COUNT(CASE WHEN br.budget_type = 'GAA' THEN 1 END) AS gaaCount
		FROM budget_records br
		LEFT JOIN organizations org ON org.uacs_code = br.org_uacs_code
		WHERE br.fiscal_year = $year
		  AND ($department = '' OR org.department_code = $department)`,

	query.YearTotals: `
		SELECT COALESCE(SUM(CASE WHEN budget_type = 'NEP' THEN amount END), 0) AS nepTotal,
		       COALESCE(SUM(CASE WHEN budget_type = 'GAA' THEN amount END), 0) AS gaaTotal,
		       COUNT(CASE WHEN budget_type = 'NEP' THEN 1 END) AS nepRecords,
		       COUNT(CASE WHEN budget_type = 'GAA' THEN 1 END) AS gaaRecords
		FROM budget_records
		WHERE fiscal_year = $year`,

	query.DepartmentCount: `SELECT COUNT(*) AS total FROM departments`,

	query.ProjectCount: `
		SELECT COUNT(DISTINCT prexc_fpap_id) AS total
		FROM budget_records
		WHERE fiscal_year = $year AND prexc_fpap_id IS NOT NULL AND prexc_fpap_id <> ''`,

	query.RecordsMapped: `
		SELECT br.id AS record__id,
		       br.fiscal_year AS record__fiscal_year,
		       br.budget_type AS record__budget_type,
		       br.amount AS record__amount,
		       br.description AS record__description,
		       org.uacs_code AS organization__uacs_code,
		       org.description AS organization__description,
		       d.code AS department__code,
		       d.description AS department__description,
		       a.code AS agency__code,
		       a.description AS agency__description,
		       ou.code AS operatingUnit__code,
		       ou.description AS operatingUnit__description,
		       r.code AS region__code,
		       r.description AS region__description,
		       p.psgc_code AS province__psgc_code,
		       p.description AS province__description,
		       c.psgc_code AS city__psgc_code,
		       c.description AS city__description,
		       fs.uacs_code AS fundingSource__uacs_code,
		       fs.description AS fundingSource__description,
		       fc.code AS fundCluster__code,
		       fc.description AS fundCluster__description,
		       fin.code AS financingSource__code,
		       fin.description AS financingSource__description,
		       so.uacs_code AS subObject__uacs_code,
		       so.description AS subObject__description,
		       ec.code AS category__code,
		       ec.description AS category__description` + recordOrg + `
		JOIN departments d ON d.code = org.department_code
		LEFT JOIN agencies a ON a.department_code = d.code AND a.code = org.agency_code
		LEFT JOIN operating_units ou ON ou.department_code = a.department_code
		     AND ou.agency_code = a.code AND ou.uacs_code = org.uacs_code
		LEFT JOIN regions r ON r.code = br.region_code
		LEFT JOIN provinces p ON p.psgc_code = br.province_psgc
		LEFT JOIN cities c ON c.psgc_code = br.city_psgc
		LEFT JOIN funding_sources fs ON fs.uacs_code = br.funding_source_code
		LEFT JOIN fund_clusters fc ON fc.code = fs.fund_cluster_code
		LEFT JOIN financing_sources fin ON fin.code = fs.financing_source_code
		LEFT JOIN sub_objects so ON so.uacs_code = br.sub_object_code
		LEFT JOIN expense_categories ec ON ec.code = so.category_code
		WHERE br.fiscal_year = $year AND br.budget_type = $type
		ORDER BY br.id
		LIMIT $limit OFFSET $offset`,

	query.RecordsCount: `
		SELECT COUNT(*) AS total
		FROM budget_records
		WHERE fiscal_year = $year AND budget_type = $type`,

	query.Classifications: `
		SELECT code, description
		FROM classifications
		ORDER BY code`,

	query.ExpenseHierarchy: `
		SELECT cls.code AS classificationCode, cls.description AS classificationDescription,
		       sc.code AS subClassCode, sc.description AS subClassDescription,
		       grp.code AS groupCode, grp.description AS groupDescription,
		       obj.code AS objectCode, obj.description AS objectDescription,` + sumByType + `
		FROM budget_records br
		JOIN sub_objects so ON so.uacs_code = br.sub_object_code
		JOIN objects obj ON obj.code = so.object_code
		JOIN expense_groups grp ON grp.code = obj.group_code
		JOIN sub_classes sc ON sc.code = grp.sub_class_code
		JOIN classifications cls ON cls.code = sc.classification_code
		LEFT JOIN organizations org ON org.uacs_code = br.org_uacs_code
		WHERE br.fiscal_year = $year
		  AND ($department = '' OR org.department_code = $department)
		GROUP BY cls.code, cls.description, sc.code, sc.description,
		         grp.code, grp.description, obj.code, obj.description
		ORDER BY classificationCode, subClassCode, groupCode, objectCode`,

	query.ClassifiedTotal: `
		SELECT COALESCE(SUM(br.amount), 0) AS total
		FROM budget_records br
		JOIN sub_objects so ON so.uacs_code = br.sub_object_code
		JOIN expense_categories ec ON ec.code = so.category_code
		WHERE br.fiscal_year = $year AND br.budget_type = $type`,

	query.ExpenseCategories: `
		SELECT ec.code AS categoryCode,
		       ec.description AS categoryName,
		       COALESCE(SUM(CASE WHEN br.budget_type = $type THEN br.amount END), 0) AS totalBudgetNep,
		       COALESCE(SUM(CASE WHEN br.budget_type = 'GAA' THEN br.amount END), 0) AS totalBudgetGaa,
		       COUNT(CASE WHEN br.budget_type = $type THEN 1 END) AS recordCount
		FROM expense_categories ec
		LEFT JOIN sub_objects so ON so.category_code = ec.code
		LEFT JOIN budget_records br ON br.sub_object_code = so.uacs_code AND br.fiscal_year = $year
		GROUP BY ec.code, ec.description
		ORDER BY totalBudgetNep DESC`,

	query.TopSubObjects: `
		SELECT so.uacs_code AS uacsCode, so.description AS description, SUM(br.amount) AS amount
		FROM budget_records br
		JOIN sub_objects so ON so.uacs_code = br.sub_object_code
		WHERE br.fiscal_year = $year AND br.budget_type = $type AND so.category_code = $categoryCode
		GROUP BY so.uacs_code, so.description
		ORDER BY amount DESC
		LIMIT $limit`,

	query.RegionTotal: `
		SELECT COALESCE(SUM(br.amount), 0) AS total
		FROM budget_records br
		JOIN regions r ON r.code = br.region_code
		WHERE br.fiscal_year = $year AND br.budget_type = $type`,

	query.Regions: `
		SELECT r.code AS code,
		       r.description AS description,
		       COALESCE(SUM(CASE WHEN br.budget_type = $type THEN br.amount END), 0) AS totalBudgetNep,
		       COALESCE(SUM(CASE WHEN br.budget_type = 'GAA' THEN br.amount END), 0) AS totalBudgetGaa
		FROM regions r
		LEFT JOIN budget_records br ON br.region_code = r.code AND br.fiscal_year = $year
		GROUP BY r.code, r.description
		ORDER BY totalBudgetNep DESC, code`,

	query.RegionalAllocation: `
		SELECT r.code AS regionCode, r.description AS regionName,
		       SUM(br.amount) AS totalBudget, COUNT(*) AS recordCount
		FROM budget_records br
		JOIN regions r ON r.code = br.region_code
		WHERE br.fiscal_year = $year AND br.budget_type = $type
		GROUP BY r.code, r.description
		ORDER BY totalBudget DESC`,

	query.RegionTopDepartments: `
		SELECT d.code AS departmentCode, d.description AS departmentName, SUM(br.amount) AS amount` + recordOrg + `
		JOIN departments d ON d.code = org.department_code
		WHERE br.fiscal_year = $year AND br.budget_type = $type AND br.region_code = $regionCode
		GROUP BY d.code, d.description
		ORDER BY amount DESC
		LIMIT $limit`,

	query.Provinces: `
		SELECT region_code AS regionCode, psgc_code AS psgcCode, description
		FROM provinces
		ORDER BY regionCode, psgcCode`,

	query.Cities: `
		SELECT region_code AS regionCode, psgc_code AS psgcCode, description, province_code AS provinceCode
		FROM cities
		ORDER BY regionCode, psgcCode`,

	query.Barangays: `
		SELECT region_code AS regionCode, psgc_code AS psgcCode, description, status
		FROM barangays
		ORDER BY regionCode, psgcCode`,

	query.Organizations: `
		SELECT org.uacs_code AS uacsCode,
		       org.description AS description,
		       org.department_code AS departmentCode,
		       org.department_description AS departmentDescription,
		       org.agency_code AS agencyCode,
		       org.agency_description AS agencyDescription,
		       COALESCE(SUM(br.amount), 0) AS totalBudget
		FROM organizations org
		LEFT JOIN budget_records br ON br.org_uacs_code = org.uacs_code
		     AND br.fiscal_year = $year AND br.budget_type = $type
		WHERE ($search = '' OR LOWER(org.description) LIKE '%' || LOWER($search) || '%')
		  AND ($department = '' OR org.department_code = $department)
		GROUP BY org.uacs_code, org.description, org.department_code, org.department_description,
		         org.agency_code, org.agency_description
		ORDER BY totalBudget DESC, uacsCode
		LIMIT $limit`,

	query.OrganizationByCode: `
		SELECT org.uacs_code AS uacsCode,
		       org.description AS description,
		       org.department_code AS departmentCode,
		       org.department_description AS departmentDescription,
		       org.agency_code AS agencyCode,
		       org.agency_description AS agencyDescription,
		       COALESCE(SUM(br.amount), 0) AS totalBudget
		FROM organizations org
		LEFT JOIN budget_records br ON br.org_uacs_code = org.uacs_code
		     AND br.fiscal_year = $year AND br.budget_type = $type
		WHERE org.uacs_code = $code
		GROUP BY org.uacs_code, org.description, org.department_code, org.department_description,
		         org.agency_code, org.agency_description`,

	query.Agencies: `
		SELECT department_code AS departmentCode, code, uacs_code AS uacsCode, description,
		       department_code AS agencyDepartmentCode
		FROM agencies
		ORDER BY departmentCode, code`,

	query.OperatingUnits: `
		SELECT department_code AS departmentCode, code, uacs_code AS uacsCode, description,
		       class_code AS classCode, lower_ou_code AS lowerOuCode
		FROM operating_units
		ORDER BY departmentCode, uacsCode`,

	query.OrganizationBudget: `
		SELECT d.code AS departmentCode, d.description AS departmentDescription,
		       a.code AS agencyCode, a.description AS agencyDescription,
		       ou.uacs_code AS operatingUnitCode, ou.description AS operatingUnitDescription,
		       br.budget_type AS budgetType, SUM(br.amount) AS amount` + recordOrg + `
		JOIN departments d ON d.code = org.department_code
		LEFT JOIN agencies a ON a.department_code = d.code AND a.code = org.agency_code
		LEFT JOIN operating_units ou ON ou.department_code = a.department_code
		     AND ou.agency_code = a.code AND ou.uacs_code = org.uacs_code
		WHERE br.fiscal_year = $year
		GROUP BY d.code, d.description, a.code, a.description, ou.uacs_code, ou.description, br.budget_type
		ORDER BY departmentCode, agencyCode, operatingUnitCode`,

	query.FundingSources: `
		SELECT fs.uacs_code AS uacsCode,
		       fs.description AS description,
		       fs.fund_cluster_code AS clusterCode,
		       fc.description AS clusterDescription,
		       COALESCE(SUM(br.amount), 0) AS totalBudget
		FROM funding_sources fs
		LEFT JOIN fund_clusters fc ON fc.code = fs.fund_cluster_code
		LEFT JOIN budget_records br ON br.funding_source_code = fs.uacs_code
		     AND br.fiscal_year = $year AND br.budget_type = $type
		GROUP BY fs.uacs_code, fs.description, fs.fund_cluster_code, fc.description
		ORDER BY totalBudget DESC, uacsCode`,

	query.FundingSourceByCode: `
		SELECT fs.uacs_code AS uacsCode,
		       fs.description AS description,
		       fs.fund_cluster_code AS clusterCode,
		       fc.description AS clusterDescription,
		       COALESCE(SUM(br.amount), 0) AS totalBudget
		FROM funding_sources fs
		LEFT JOIN fund_clusters fc ON fc.code = fs.fund_cluster_code
		LEFT JOIN budget_records br ON br.funding_source_code = fs.uacs_code
		     AND br.fiscal_year = $year AND br.budget_type = $type
		WHERE fs.uacs_code = $code
		GROUP BY fs.uacs_code, fs.description, fs.fund_cluster_code, fc.description`,

	query.FundingHierarchy: `
		SELECT fc.code AS clusterCode,
		       fc.description AS clusterDescription,
		       fs.uacs_code AS fundingSourceCode,
		       fs.description AS fundingSourceDescription,
		       fs.financing_source_code AS financingSourceCode,
		       fin.description AS financingSourceDescription,
		       fs.authorization_code AS authorizationCode,
		       auth.description AS authorizationDescription,
		       fs.fund_category_code AS fundCategoryCode,
		       fcat.description AS fundCategoryDescription
		FROM fund_clusters fc
		LEFT JOIN funding_sources fs ON fs.fund_cluster_code = fc.code
		LEFT JOIN financing_sources fin ON fin.code = fs.financing_source_code
		LEFT JOIN authorizations auth ON auth.code = fs.authorization_code
		LEFT JOIN fund_categories fcat ON fcat.code = fs.fund_category_code
		ORDER BY clusterCode, fundingSourceCode`,

	query.Departments: `
		SELECT d.code AS code,
		       d.description AS description,
		       d.abbreviation AS abbreviation,
		       COALESCE(b.nepBudget, 0) AS totalBudgetNep,
		       COALESCE(b.gaaBudget, 0) AS totalBudgetGaa,
		       COALESCE(ac.agencyCount, 0) AS agencyCount
		FROM departments d
		LEFT JOIN (
			SELECT department_code, COUNT(DISTINCT code) AS agencyCount
			FROM agencies
			GROUP BY department_code
		) ac ON ac.department_code = d.code
		LEFT JOIN (
			SELECT org.department_code,
			       SUM(CASE WHEN br.budget_type = $type THEN br.amount END) AS nepBudget,
			       SUM(CASE WHEN br.budget_type = 'GAA' THEN br.amount END) AS gaaBudget` + recordOrg + `
			WHERE br.fiscal_year = $year
			GROUP BY org.department_code
		) b ON b.department_code = d.code
		ORDER BY totalBudgetNep DESC, code`,

	query.DepartmentByCode: `
		SELECT code, description, abbreviation
		FROM departments
		WHERE code = $code`,

	query.DepartmentBudget: `
		SELECT COALESCE(SUM(br.amount), 0) AS totalBudget` + recordOrg + `
		WHERE org.department_code = $code AND br.fiscal_year = $year AND br.budget_type = $type`,

	query.DepartmentAgencies: `
		SELECT a.code AS code, a.description AS description, a.uacs_code AS uacsCode,` + sumByType + `
		FROM agencies a
		LEFT JOIN organizations org ON org.department_code = a.department_code AND org.agency_code = a.code
		LEFT JOIN budget_records br ON br.org_uacs_code = org.uacs_code AND br.fiscal_year = $year
		WHERE a.department_code = $code
		GROUP BY a.code, a.description, a.uacs_code
		ORDER BY code`,

	query.DepartmentOUClasses: `
		SELECT ouc.code AS code, ouc.description AS description, ouc.status AS status,
		       (SELECT COUNT(DISTINCT ou.uacs_code) FROM operating_units ou
		         WHERE ou.department_code = ouc.department_code AND ou.class_code = ouc.code) AS operatingUnitCount,` + sumByType + `
		FROM operating_unit_classes ouc
		LEFT JOIN organizations org ON org.department_code = ouc.department_code AND org.class_code = ouc.code
		LEFT JOIN budget_records br ON br.org_uacs_code = org.uacs_code AND br.fiscal_year = $year
		WHERE ouc.department_code = $code
		GROUP BY ouc.code, ouc.description, ouc.status, ouc.department_code
		ORDER BY code`,

	query.DepartmentRegions: `
		SELECT r.code AS code, r.description AS description,` + sumByType + recordOrg + `
		JOIN regions r ON r.code = br.region_code
		WHERE br.fiscal_year = $year AND org.department_code = $code
		GROUP BY r.code, r.description
		ORDER BY gaaBudget DESC`,

	query.DepartmentFunding: `
		SELECT fs.uacs_code AS uacsCode, fs.description AS description,
		       fs.fund_cluster_code AS fundClusterCode,` + sumByType + recordOrg + `
		JOIN funding_sources fs ON fs.uacs_code = br.funding_source_code
		WHERE br.fiscal_year = $year AND org.department_code = $code
		GROUP BY fs.uacs_code, fs.description, fs.fund_cluster_code
		ORDER BY gaaBudget DESC`,

	query.DepartmentProjects: `
		SELECT br.prexc_fpap_id AS prexcFpapId,
		       MIN(br.description) AS description,` + sumByType + recordOrg + `
		WHERE br.fiscal_year = $year AND org.department_code = $code
		  AND br.prexc_fpap_id IS NOT NULL AND br.prexc_fpap_id <> ''
		GROUP BY br.prexc_fpap_id
		ORDER BY gaaBudget DESC`,
}
