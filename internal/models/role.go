package models

// Role identifies which role table owns an identity.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleHOD     Role = "hod"
	RoleAdmin   Role = "admin"
)

// AllRoles lists every role table queried during resolution, in a fixed order.
var AllRoles = []Role{RoleStudent, RoleTeacher, RoleHOD, RoleAdmin}

// Valid reports whether r names a known role table.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleHOD, RoleAdmin:
		return true
	}
	return false
}

// Privileged reports whether self-registration for r is gated by a PIN.
func (r Role) Privileged() bool {
	return r == RoleHOD || r == RoleAdmin
}

// RecordStatus is the lifecycle status of a role record.
type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusPending  RecordStatus = "pending"
	StatusApproved RecordStatus = "approved"
	StatusRejected RecordStatus = "rejected"
)

// DefaultStatus returns the status a freshly completed profile starts with.
// Teachers await HOD approval; every other role is immediately active.
func DefaultStatus(role Role) RecordStatus {
	if role == RoleTeacher {
		return StatusPending
	}
	return StatusActive
}

// ResolutionKind classifies how many role tables contain a given identity.
type ResolutionKind string

const (
	ResolutionNone     ResolutionKind = "none"
	ResolutionSingle   ResolutionKind = "single"
	ResolutionMultiple ResolutionKind = "multiple"
)

// RoleResolution is the derived, non-persisted outcome of querying all four
// role tables for one identity. It is computed fresh on every call; the
// denormalized role tag on the identity is never consulted.
type RoleResolution struct {
	Kind  ResolutionKind `json:"kind"`
	Roles []Role         `json:"roles"`

	// Record is set only when Kind is ResolutionSingle. The concrete type is
	// *Student, *Teacher, *HOD or *Admin depending on Roles[0].
	Record any `json:"record,omitempty"`
}

// Role returns the resolved role for a single-match resolution, or "" otherwise.
func (r *RoleResolution) Role() Role {
	if r.Kind == ResolutionSingle && len(r.Roles) == 1 {
		return r.Roles[0]
	}
	return ""
}
