// Package repository translates resource CRUD intents into parameterized
// GORM queries. List reads go through the redis list cache; every mutation
// invalidates the resource's list key.
//
// Update takes a column map listing every column of the table so that an
// omitted field overwrites its column with NULL. This full-overwrite
// semantic is intentional and matched by the handlers' request types.
package repository

import "time"

// listCacheTTL bounds staleness of cached list responses.
const listCacheTTL = 30 * time.Second
