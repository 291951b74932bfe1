// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

// Annotations describes behavioral properties of an operation as
// advertised to the protocol layer. Tool servers translate these
// properties into protocol-specific hints that help agents decide
// which operations are safe to call freely, which can be retried, and
// which deserve confirmation.
//
// All fields are pointers. A nil field means "unspecified" and the
// protocol layer applies its own defaults (which in MCP are: not
// read-only, destructive, not idempotent, open-world).
//
// Every operation in the catalog sets Annotations through one of the
// preset constructors: [ReadOnly], [Idempotent], [Create], or
// [Destructive]. All presets are open-world: every operation reaches
// an external n8n instance the caller named, not state owned by this
// process.
type Annotations struct {
	// ReadOnly is true when the operation only reads backend state.
	// Agents may call read-only operations freely without confirmation.
	ReadOnly *bool

	// Destructive is true when the operation may irreversibly remove
	// data. Agents should require explicit confirmation before calling
	// destructive operations.
	Destructive *bool

	// Idempotent is true when repeated calls with identical arguments
	// converge to the same result. Agents may safely retry idempotent
	// operations on transient failures.
	Idempotent *bool

	// OpenWorld is true when the operation interacts with entities
	// beyond this process's boundary.
	OpenWorld *bool
}

// ReadOnly returns annotations for operations that query backend state
// without modifying it: list, get, generate-audit.
func ReadOnly() *Annotations {
	return &Annotations{
		ReadOnly:    boolPtr(true),
		Destructive: boolPtr(false),
		Idempotent:  boolPtr(true),
		OpenWorld:   boolPtr(true),
	}
}

// Idempotent returns annotations for operations that modify state but
// converge when repeated with identical arguments: update, activate,
// deactivate, connect.
func Idempotent() *Annotations {
	return &Annotations{
		ReadOnly:    boolPtr(false),
		Destructive: boolPtr(false),
		Idempotent:  boolPtr(true),
		OpenWorld:   boolPtr(true),
	}
}

// Create returns annotations for operations whose effects accumulate
// on repeated calls: create-workflow, create-user, create-tag.
func Create() *Annotations {
	return &Annotations{
		ReadOnly:    boolPtr(false),
		Destructive: boolPtr(false),
		Idempotent:  boolPtr(false),
		OpenWorld:   boolPtr(true),
	}
}

// Destructive returns annotations for operations that irreversibly
// remove resources: the delete family.
func Destructive() *Annotations {
	return &Annotations{
		ReadOnly:    boolPtr(false),
		Destructive: boolPtr(true),
		Idempotent:  boolPtr(false),
		OpenWorld:   boolPtr(true),
	}
}

func boolPtr(value bool) *bool {
	return &value
}
