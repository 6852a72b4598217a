package tycoon

import "github.com/xraph/tycoon/id"

// ID is the primary identifier type for all Tycoon entities.
type ID = id.ID

// Prefix identifies the entity type encoded in a TypeID.
type Prefix = id.Prefix
