package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const inMemory = ":memory:"

const BudgetRecordsSchema = `
	CREATE TABLE IF NOT EXISTS budget_records (
		id VARCHAR PRIMARY KEY,
		fiscal_year VARCHAR NOT NULL,
		budget_type VARCHAR NOT NULL,
		amount DOUBLE NOT NULL DEFAULT 0,
		description VARCHAR,
		prexc_fpap_id VARCHAR,
		org_uacs_code VARCHAR,
		region_code VARCHAR,
		province_psgc VARCHAR,
		city_psgc VARCHAR,
		funding_source_code VARCHAR,
		sub_object_code VARCHAR
	);
`

const OrganizationSchema = `
	CREATE TABLE IF NOT EXISTS departments (
		code VARCHAR PRIMARY KEY,
		description VARCHAR,
		abbreviation VARCHAR
	);
	CREATE TABLE IF NOT EXISTS agencies (
		department_code VARCHAR NOT NULL,
		code VARCHAR NOT NULL,
		uacs_code VARCHAR,
		description VARCHAR,
		PRIMARY KEY (department_code, code)
	);
	CREATE TABLE IF NOT EXISTS operating_unit_classes (
		department_code VARCHAR NOT NULL,
		code VARCHAR NOT NULL,
		description VARCHAR,
		status VARCHAR,
		PRIMARY KEY (department_code, code)
	);
	CREATE TABLE IF NOT EXISTS operating_units (
		uacs_code VARCHAR PRIMARY KEY,
		code VARCHAR,
		description VARCHAR,
		department_code VARCHAR,
		agency_code VARCHAR,
		class_code VARCHAR,
		lower_ou_code VARCHAR
	);
	CREATE TABLE IF NOT EXISTS organizations (
		uacs_code VARCHAR PRIMARY KEY,
		description VARCHAR,
		department_code VARCHAR,
		department_description VARCHAR,
		agency_code VARCHAR,
		agency_description VARCHAR,
		class_code VARCHAR
	);
`

const LocationSchema = `
	CREATE TABLE IF NOT EXISTS regions (
		code VARCHAR PRIMARY KEY,
		description VARCHAR
	);
	CREATE TABLE IF NOT EXISTS provinces (
		psgc_code VARCHAR PRIMARY KEY,
		description VARCHAR,
		region_code VARCHAR
	);
	CREATE TABLE IF NOT EXISTS cities (
		psgc_code VARCHAR PRIMARY KEY,
		description VARCHAR,
		province_code VARCHAR,
		region_code VARCHAR
	);
	CREATE TABLE IF NOT EXISTS barangays (
		psgc_code VARCHAR PRIMARY KEY,
		description VARCHAR,
		status VARCHAR,
		region_code VARCHAR
	);
`

const FundingSchema = `
	CREATE TABLE IF NOT EXISTS fund_clusters (
		code VARCHAR PRIMARY KEY,
		description VARCHAR
	);
	CREATE TABLE IF NOT EXISTS financing_sources (
		code VARCHAR PRIMARY KEY,
		description VARCHAR
	);
	CREATE TABLE IF NOT EXISTS authorizations (
		code VARCHAR PRIMARY KEY,
		description VARCHAR
	);
	CREATE TABLE IF NOT EXISTS fund_categories (
		code VARCHAR PRIMARY KEY,
		uacs_code VARCHAR,
		description VARCHAR
	);
	CREATE TABLE IF NOT EXISTS funding_sources (
		uacs_code VARCHAR PRIMARY KEY,
		description VARCHAR,
		fund_cluster_code VARCHAR,
		financing_source_code VARCHAR,
		authorization_code VARCHAR,
		fund_category_code VARCHAR
	);
`

const ExpenseSchema = `
	CREATE TABLE IF NOT EXISTS classifications (
		code VARCHAR PRIMARY KEY,
		description VARCHAR
	);
	CREATE TABLE IF NOT EXISTS sub_classes (
		code VARCHAR PRIMARY KEY,
		description VARCHAR,
		classification_code VARCHAR
	);
	CREATE TABLE IF NOT EXISTS expense_groups (
		code VARCHAR PRIMARY KEY,
		description VARCHAR,
		sub_class_code VARCHAR
	);
	CREATE TABLE IF NOT EXISTS objects (
		code VARCHAR PRIMARY KEY,
		description VARCHAR,
		group_code VARCHAR
	);
	CREATE TABLE IF NOT EXISTS expense_categories (
		code VARCHAR PRIMARY KEY,
		description VARCHAR
	);
	CREATE TABLE IF NOT EXISTS sub_objects (
		uacs_code VARCHAR PRIMARY KEY,
		description VARCHAR,
		object_code VARCHAR,
		category_code VARCHAR
	);
`

var bootQueries = []string{
	BudgetRecordsSchema,
	OrganizationSchema,
	LocationSchema,
	FundingSchema,
	ExpenseSchema,
}

type Settings struct {
	DbPath  string
	Threads int
}

// NewDB opens the local budget mirror and creates its schema when missing.
// An empty path or ":memory:" opens an in-memory database.
func NewDB(settings Settings) (*sql.DB, error) {
	path := settings.DbPath
	if path == inMemory {
		path = ""
	}
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=%d", path, threads), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sql.OpenDB(c), nil
}
