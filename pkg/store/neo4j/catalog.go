package neo4j

import "github.com/de-tools/budget-atlas/pkg/store/query"

const sumByType = `
	sum(CASE WHEN br.budget_type = 'NEP' THEN br.amount ELSE 0 END) AS nepBudget,
	sum(CASE WHEN br.budget_type = 'GAA' THEN br.amount ELSE 0 END) AS gaaBudget`

// Catalog holds the Cypher text for every named query.
var Catalog = query.Catalog{
	query.Ping: `RETURN 1 AS ok`,

	query.BudgetTotal: `
		MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})
		WHERE ($department = '' OR EXISTS { MATCH (br)-[:ALLOCATED_TO]->(:Organization {department_code: $department}) })
		  AND ($region = '' OR EXISTS { MATCH (br)-[:LOCATED_IN_REGION]->(:Region {code: $region}) })
		RETURN sum(br.amount) AS total, count(br) AS recordCount`,

	query.BudgetByDepartment: `
		MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:ALLOCATED_TO]->(org:Organization)
		MATCH (d:Department {code: org.department_code})
		WITH d.code AS departmentCode,
		     d.description AS departmentName,
		     sum(br.amount) AS totalBudget,
		     count(br) AS recordCount
		ORDER BY totalBudget DESC
		LIMIT $limit
		RETURN departmentCode, departmentName, totalBudget, recordCount`,

	query.BudgetNepGaaByDept: `
		MATCH (br:BudgetRecord {fiscal_year: $year})-[:ALLOCATED_TO]->(org:Organization)
		MATCH (d:Department {code: org.department_code})
		WITH d.code AS departmentCode,
		     d.description AS departmentName,
		     sum(CASE WHEN br.budget_type = 'NEP' THEN br.amount ELSE 0 END) AS nepTotal,
		     count(CASE WHEN br.budget_type = 'NEP' THEN br END) AS nepCount,
		     sum(CASE WHEN br.budget_type = 'GAA' THEN br.amount ELSE 0 END) AS gaaTotal,
		     count(CASE WHEN br.budget_type = 'GAA' THEN br END) AS gaaCount
		WHERE nepTotal > 0 OR gaaTotal > 0
		RETURN departmentCode, departmentName, nepTotal, nepCount, gaaTotal, gaaCount
		ORDER BY gaaTotal DESC`,

	query.BudgetCompareNepGaa: `
		MATCH (br:BudgetRecord {fiscal_year: $year})
		WHERE $department = '' OR EXISTS { MATCH (br)-[:ALLOCATED_TO]->(:Organization {department_code: $department}) }
		RETURN sum(CASE WHEN br.budget_type = 'NEP' THEN br.amount ELSE 0 END) AS nepTotal,
		       count(CASE WHEN br.budget_type = 'NEP' THEN br END) AS nepCount,
		       sum(CASE WHEN br.budget_type = 'GAA' THEN br.amount ELSE 0 END) AS gaaTotal,
		       count(CASE WHEN br.budget_type = 'GAA' THEN br END) AS gaaCount`,

	query.YearTotals: `
		MATCH (br:BudgetRecord {fiscal_year: $year})
		RETURN sum(CASE WHEN br.budget_type = 'NEP' THEN br.amount ELSE 0 END) AS nepTotal,
		       sum(CASE WHEN br.budget_type = 'GAA' THEN br.amount ELSE 0 END) AS gaaTotal,
		       count(CASE WHEN br.budget_type = 'NEP' THEN br END) AS nepRecords,
		       count(CASE WHEN br.budget_type = 'GAA' THEN br END) AS gaaRecords`,

	query.DepartmentCount: `MATCH (d:Department) RETURN count(d) AS total`,

	query.ProjectCount: `
		MATCH (br:BudgetRecord {fiscal_year: $year})
		WHERE br.prexc_fpap_id IS NOT NULL AND br.prexc_fpap_id <> ''
		RETURN count(DISTINCT br.prexc_fpap_id) AS total`,

	query.RecordsMapped: `
		MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})
		MATCH (br)-[:ALLOCATED_TO]->(org:Organization)
		MATCH (d:Department {code: org.department_code})
		OPTIONAL MATCH (d)-[:HAS_AGENCY]->(a:Agency {code: org.agency_code})
		OPTIONAL MATCH (a)-[:HAS_OPERATING_UNIT]->(ou:OperatingUnit)
		  WHERE ou.uacs_code = org.uacs_code
		OPTIONAL MATCH (br)-[:LOCATED_IN_REGION]->(r:Region)
		OPTIONAL MATCH (br)-[:LOCATED_IN_PROVINCE]->(prov:Province)
		OPTIONAL MATCH (br)-[:LOCATED_IN_CITY]->(city:CityMunicipality)
		OPTIONAL MATCH (br)-[:FUNDED_BY]->(fs:FundingSource)
		OPTIONAL MATCH (fs)-[:HAS_FUND_CLUSTER]->(fc:FundCluster)
		OPTIONAL MATCH (fs)-[:HAS_FINANCING_SOURCE]->(fin:FinancingSource)
		OPTIONAL MATCH (br)-[:CLASSIFIED_AS]->(so:SubObject)
		OPTIONAL MATCH (so)-[:IN_CATEGORY]->(ec:ExpenseCategory)
		RETURN br AS record, org AS organization, d AS department, a AS agency, ou AS operatingUnit,
		       r AS region, prov AS province, city AS city,
		       fs AS fundingSource, fc AS fundCluster, fin AS financingSource,
		       so AS subObject, ec AS category
		ORDER BY br.id
		SKIP $offset
		LIMIT $limit`,

	query.RecordsCount: `
		MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})
		RETURN count(br) AS total`,

	query.Classifications: `
		MATCH (cls:Classification)
		RETURN cls.code AS code, cls.description AS description
		ORDER BY cls.code`,

	query.ExpenseHierarchy: `
		MATCH (br:BudgetRecord {fiscal_year: $year})-[:CLASSIFIED_AS]->(so:SubObject)
		WHERE $department = '' OR EXISTS { MATCH (br)-[:ALLOCATED_TO]->(:Organization {department_code: $department}) }
		MATCH (obj:Object)-[:HAS_SUB_OBJECT]->(so)
		MATCH (grp:ExpenseGroup)-[:HAS_OBJECT]->(obj)
		MATCH (sc:SubClass)-[:HAS_GROUP]->(grp)
		MATCH (cls:Classification)-[:HAS_SUB_CLASS]->(sc)
		WITH cls.code AS classificationCode, cls.description AS classificationDescription,
		     sc.code AS subClassCode, sc.description AS subClassDescription,
		     grp.code AS groupCode, grp.description AS groupDescription,
		     obj.code AS objectCode, obj.description AS objectDescription,` + sumByType + `
		RETURN classificationCode, classificationDescription,
		       subClassCode, subClassDescription,
		       groupCode, groupDescription,
		       objectCode, objectDescription,
		       nepBudget, gaaBudget
		ORDER BY classificationCode, subClassCode, groupCode, objectCode`,

	query.ClassifiedTotal: `
		MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:CLASSIFIED_AS]->(:SubObject)-[:IN_CATEGORY]->(:ExpenseCategory)
		RETURN sum(br.amount) AS total`,

	query.ExpenseCategories: `
		MATCH (ec:ExpenseCategory)
		OPTIONAL MATCH (brNep:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:CLASSIFIED_AS]->(:SubObject)-[:IN_CATEGORY]->(ec)
		WITH ec, sum(brNep.amount) AS totalBudgetNep, count(brNep) AS recordCount
		OPTIONAL MATCH (brGaa:BudgetRecord {fiscal_year: $year, budget_type: 'GAA'})-[:CLASSIFIED_AS]->(:SubObject)-[:IN_CATEGORY]->(ec)
		WITH ec, totalBudgetNep, recordCount, sum(brGaa.amount) AS totalBudgetGaa
		RETURN ec.code AS categoryCode,
		       ec.description AS categoryName,
		       totalBudgetNep,
		       totalBudgetGaa,
		       recordCount
		ORDER BY totalBudgetNep DESC`,

	query.TopSubObjects: `
		MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:CLASSIFIED_AS]->(so:SubObject)-[:IN_CATEGORY]->(:ExpenseCategory {code: $categoryCode})
		WITH so.uacs_code AS uacsCode, so.description AS description, sum(br.amount) AS amount
		RETURN uacsCode, description, amount
		ORDER BY amount DESC
		LIMIT $limit`,

	query.RegionTotal: `
		MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:LOCATED_IN_REGION]->(:Region)
		RETURN sum(br.amount) AS total`,

	query.Regions: `
		MATCH (r:Region)
		OPTIONAL MATCH (brNep:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:LOCATED_IN_REGION]->(r)
		WITH r, sum(brNep.amount) AS totalBudgetNep
		OPTIONAL MATCH (brGaa:BudgetRecord {fiscal_year: $year, budget_type: 'GAA'})-[:LOCATED_IN_REGION]->(r)
		WITH r, totalBudgetNep, sum(brGaa.amount) AS totalBudgetGaa
		RETURN r.code AS code, r.description AS description, totalBudgetNep, totalBudgetGaa
		ORDER BY totalBudgetNep DESC, code`,

	query.RegionalAllocation: `
		MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:LOCATED_IN_REGION]->(r:Region)
		WITH r, sum(br.amount) AS totalBudget, count(br) AS recordCount
		RETURN r.code AS regionCode, r.description AS regionName, totalBudget, recordCount
		ORDER BY totalBudget DESC`,

	query.RegionTopDepartments: `
		MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:LOCATED_IN_REGION]->(:Region {code: $regionCode})
		MATCH (br)-[:ALLOCATED_TO]->(org:Organization)
		MATCH (d:Department {code: org.department_code})
		WITH d.code AS departmentCode, d.description AS departmentName, sum(br.amount) AS amount
		RETURN departmentCode, departmentName, amount
		ORDER BY amount DESC
		LIMIT $limit`,

	query.Provinces: `
		MATCH (r:Region)-[:HAS_PROVINCE]->(p:Province)
		RETURN DISTINCT r.code AS regionCode, p.psgc_code AS psgcCode, p.description AS description
		ORDER BY regionCode, psgcCode`,

	query.Cities: `
		MATCH (r:Region)-[:HAS_PROVINCE]->(:Province)-[:HAS_CITY]->(c:CityMunicipality)
		RETURN DISTINCT r.code AS regionCode, c.psgc_code AS psgcCode, c.description AS description,
		       c.province_code AS provinceCode
		ORDER BY regionCode, psgcCode`,

	query.Barangays: `
		MATCH (r:Region)-[:HAS_PROVINCE]->(:Province)-[:HAS_CITY]->(:CityMunicipality)-[:HAS_BARANGAY]->(b:Barangay)
		RETURN DISTINCT r.code AS regionCode, b.psgc_code AS psgcCode, b.description AS description,
		       b.status AS status
		ORDER BY regionCode, psgcCode`,

	query.Organizations: `
		MATCH (org:Organization)
		WHERE ($search = '' OR toLower(org.description) CONTAINS toLower($search))
		  AND ($department = '' OR org.department_code = $department)
		OPTIONAL MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:ALLOCATED_TO]->(org)
		WITH org, sum(br.amount) AS totalBudget
		RETURN org.uacs_code AS uacsCode,
		       org.description AS description,
		       org.department_code AS departmentCode,
		       org.department_description AS departmentDescription,
		       org.agency_code AS agencyCode,
		       org.agency_description AS agencyDescription,
		       totalBudget
		ORDER BY totalBudget DESC, uacsCode
		LIMIT $limit`,

	query.OrganizationByCode: `
		MATCH (org:Organization {uacs_code: $code})
		OPTIONAL MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:ALLOCATED_TO]->(org)
		WITH org, sum(br.amount) AS totalBudget
		RETURN org.uacs_code AS uacsCode,
		       org.description AS description,
		       org.department_code AS departmentCode,
		       org.department_description AS departmentDescription,
		       org.agency_code AS agencyCode,
		       org.agency_description AS agencyDescription,
		       totalBudget`,

	query.Agencies: `
		MATCH (d:Department)-[:HAS_AGENCY]->(a:Agency)
		RETURN DISTINCT d.code AS departmentCode, a.code AS code, a.uacs_code AS uacsCode,
		       a.description AS description, a.department_code AS agencyDepartmentCode
		ORDER BY departmentCode, code`,

	query.OperatingUnits: `
		MATCH (d:Department)-[:HAS_AGENCY]->(:Agency)-[:HAS_OPERATING_UNIT]->(ou:OperatingUnit)
		RETURN DISTINCT d.code AS departmentCode, ou.code AS code, ou.uacs_code AS uacsCode,
		       ou.description AS description, ou.class_code AS classCode, ou.lower_ou_code AS lowerOuCode
		ORDER BY departmentCode, uacsCode`,

	query.OrganizationBudget: `
		MATCH (br:BudgetRecord {fiscal_year: $year})-[:ALLOCATED_TO]->(org:Organization)
		MATCH (d:Department {code: org.department_code})
		OPTIONAL MATCH (d)-[:HAS_AGENCY]->(a:Agency {code: org.agency_code})
		OPTIONAL MATCH (a)-[:HAS_OPERATING_UNIT]->(ou:OperatingUnit)
		  WHERE ou.uacs_code = org.uacs_code
		RETURN d.code AS departmentCode, d.description AS departmentDescription,
		       a.code AS agencyCode, a.description AS agencyDescription,
		       ou.uacs_code AS operatingUnitCode, ou.description AS operatingUnitDescription,
		       br.budget_type AS budgetType, sum(br.amount) AS amount
		ORDER BY departmentCode, agencyCode, operatingUnitCode`,

	query.FundingSources: `
		MATCH (fs:FundingSource)
		OPTIONAL MATCH (fc:FundCluster {code: fs.fund_cluster_code})
		OPTIONAL MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:FUNDED_BY]->(fs)
		WITH fs, fc, sum(br.amount) AS totalBudget
		RETURN fs.uacs_code AS uacsCode,
		       fs.description AS description,
		       fs.fund_cluster_code AS clusterCode,
		       fc.description AS clusterDescription,
		       totalBudget
		ORDER BY totalBudget DESC, uacsCode`,

	query.FundingSourceByCode: `
		MATCH (fs:FundingSource {uacs_code: $code})
		OPTIONAL MATCH (fc:FundCluster {code: fs.fund_cluster_code})
		OPTIONAL MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:FUNDED_BY]->(fs)
		WITH fs, fc, sum(br.amount) AS totalBudget
		RETURN fs.uacs_code AS uacsCode,
		       fs.description AS description,
		       fs.fund_cluster_code AS clusterCode,
		       fc.description AS clusterDescription,
		       totalBudget`,

	query.FundingHierarchy: `
		MATCH (fc:FundCluster)
		OPTIONAL MATCH (fs:FundingSource {fund_cluster_code: fc.code})
		OPTIONAL MATCH (fin:FinancingSource {code: fs.financing_source_code})
		OPTIONAL MATCH (auth:Authorization {code: fs.authorization_code})
		OPTIONAL MATCH (fcat:FundCategory {code: fs.fund_category_code})
		RETURN fc.code AS clusterCode,
		       fc.description AS clusterDescription,
		       fs.uacs_code AS fundingSourceCode,
		       fs.description AS fundingSourceDescription,
		       fs.financing_source_code AS financingSourceCode,
		       fin.description AS financingSourceDescription,
		       fs.authorization_code AS authorizationCode,
		       auth.description AS authorizationDescription,
		       fs.fund_category_code AS fundCategoryCode,
		       fcat.description AS fundCategoryDescription
		ORDER BY clusterCode, fundingSourceCode`,

	query.Departments: `
		MATCH (d:Department)
		OPTIONAL MATCH (d)-[:HAS_AGENCY]->(a:Agency)
		WITH d, count(DISTINCT a) AS agencyCount
		OPTIONAL MATCH (brNep:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:ALLOCATED_TO]->(:Organization {department_code: d.code})
		WITH d, agencyCount, sum(brNep.amount) AS totalBudgetNep
		OPTIONAL MATCH (brGaa:BudgetRecord {fiscal_year: $year, budget_type: 'GAA'})-[:ALLOCATED_TO]->(:Organization {department_code: d.code})
		WITH d, agencyCount, totalBudgetNep, sum(brGaa.amount) AS totalBudgetGaa
		RETURN d.code AS code, d.description AS description, d.abbreviation AS abbreviation,
		       totalBudgetNep, totalBudgetGaa, agencyCount
		ORDER BY totalBudgetNep DESC, code`,

	query.DepartmentByCode: `
		MATCH (d:Department {code: $code})
		RETURN d.code AS code, d.description AS description, d.abbreviation AS abbreviation`,

	query.DepartmentBudget: `
		MATCH (d:Department {code: $code})
		OPTIONAL MATCH (br:BudgetRecord {fiscal_year: $year, budget_type: $type})-[:ALLOCATED_TO]->(:Organization {department_code: d.code})
		RETURN sum(br.amount) AS totalBudget`,

	query.DepartmentAgencies: `
		MATCH (d:Department {code: $code})-[:HAS_AGENCY]->(a:Agency)
		OPTIONAL MATCH (br:BudgetRecord {fiscal_year: $year})-[:ALLOCATED_TO]->(:Organization {agency_code: a.code})
		RETURN a.code AS code, a.description AS description, a.uacs_code AS uacsCode,` + sumByType + `
		ORDER BY code`,

	query.DepartmentOUClasses: `
		MATCH (d:Department {code: $code})-[:HAS_AGENCY]->(:Agency)-[:HAS_OPERATING_UNIT_CLASS]->(ouc:OperatingUnitClass)
		OPTIONAL MATCH (ouc)-[:HAS_OPERATING_UNIT]->(ou:OperatingUnit)
		WITH ouc, count(DISTINCT ou) AS operatingUnitCount
		OPTIONAL MATCH (br:BudgetRecord {fiscal_year: $year})-[:ALLOCATED_TO]->(org:Organization {department_code: $code})
		  WHERE org.class_code = ouc.code
		RETURN ouc.code AS code, ouc.description AS description, ouc.status AS status,
		       operatingUnitCount,` + sumByType + `
		ORDER BY code`,

	query.DepartmentRegions: `
		MATCH (br:BudgetRecord {fiscal_year: $year})-[:ALLOCATED_TO]->(:Organization {department_code: $code})
		MATCH (br)-[:LOCATED_IN_REGION]->(r:Region)
		RETURN r.code AS code, r.description AS description,` + sumByType + `
		ORDER BY gaaBudget DESC`,

	query.DepartmentFunding: `
		MATCH (br:BudgetRecord {fiscal_year: $year})-[:ALLOCATED_TO]->(:Organization {department_code: $code})
		MATCH (br)-[:FUNDED_BY]->(fs:FundingSource)
		RETURN fs.uacs_code AS uacsCode, fs.description AS description,
		       fs.fund_cluster_code AS fundClusterCode,` + sumByType + `
		ORDER BY gaaBudget DESC`,

	query.DepartmentProjects: `
		MATCH (br:BudgetRecord {fiscal_year: $year})-[:ALLOCATED_TO]->(:Organization {department_code: $code})
		WHERE br.prexc_fpap_id IS NOT NULL AND br.prexc_fpap_id <> ''
		WITH br.prexc_fpap_id AS prexcFpapId,
		     collect(DISTINCT br.description)[0] AS description,` + sumByType + `
		RETURN prexcFpapId, description, nepBudget, gaaBudget
		ORDER BY gaaBudget DESC`,
}
