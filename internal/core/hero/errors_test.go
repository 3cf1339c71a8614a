// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero_test

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func fkViolation() error     { return &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation} }
func uniqueViolation() error { return &pgconn.PgError{Code: pgerrcode.UniqueViolation} }
