package migrations

import "embed"

// FS holds the schema migrations consumed by the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
