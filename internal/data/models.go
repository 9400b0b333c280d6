// File: internal/data/models.go
// Purpose: wraps all data models around a single injected connection pool.
package data

import "database/sql"

// Models wraps all data models for use with db. The pool is constructed in
// main and injected here, never held as package-level state.
type Models struct {
	Users    UserModel
	Tokens   TokenModel
	Products ProductModel
	Sales    SaleModel
	Reports  ReportModel
}

// NewModels initializes the Models struct with a given database connection.
func NewModels(db *sql.DB) Models {
	return Models{
		Users:    UserModel{DB: db},
		Tokens:   TokenModel{DB: db},
		Products: ProductModel{DB: db},
		Sales:    SaleModel{DB: db},
		Reports:  ReportModel{DB: db},
	}
}
