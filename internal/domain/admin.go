package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole identifies one of the four admin panel roles.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleAdmin      AdminRole = "admin"
	RoleManager    AdminRole = "manager"
	RoleModerator  AdminRole = "moderator"
)

// AllAdminRoles returns all valid admin roles.
func AllAdminRoles() []AdminRole {
	return []AdminRole{RoleSuperAdmin, RoleAdmin, RoleManager, RoleModerator}
}

// IsValidRole reports whether r is a known admin role.
func IsValidRole(r AdminRole) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleModerator:
		return true
	}
	return false
}

// Permission is a string tag for one discrete admin capability.
type Permission string

const (
	PermManageAdmins         Permission = "manage_admins"
	PermManagePhotographers  Permission = "manage_photographers"
	PermManageCustomers      Permission = "manage_customers"
	PermManageBookings       Permission = "manage_bookings"
	PermAssignPhotographers  Permission = "assign_photographers"
	PermViewReports          Permission = "view_reports"
	PermManagePayments       Permission = "manage_payments"
	PermViewFinancialReports Permission = "view_financial_reports"
	PermSystemSettings       Permission = "system_settings"
	PermBackupRestore        Permission = "backup_restore"
)

// rolePermissions is the static role → permission table. super_admin holds
// the total set; the other roles hold strict subsets.
var rolePermissions = map[AdminRole][]Permission{
	RoleSuperAdmin: {
		PermManageAdmins, PermManagePhotographers, PermManageCustomers,
		PermManageBookings, PermAssignPhotographers, PermViewReports,
		PermManagePayments, PermViewFinancialReports,
		PermSystemSettings, PermBackupRestore,
	},
	RoleAdmin: {
		PermManagePhotographers, PermManageCustomers,
		PermManageBookings, PermAssignPhotographers, PermViewReports,
		PermManagePayments,
	},
	RoleManager: {
		PermManagePhotographers, PermManageCustomers,
		PermManageBookings, PermAssignPhotographers, PermViewReports,
	},
	RoleModerator: {
		PermManageCustomers, PermManageBookings, PermViewReports,
	},
}

// PermissionsFor returns the ordered permission set granted to a role.
// Unknown roles grant nothing. The returned slice is a copy.
func PermissionsFor(role AdminRole) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether the role's set contains p.
func HasPermission(role AdminRole, p Permission) bool {
	for _, perm := range rolePermissions[role] {
		if perm == p {
			return true
		}
	}
	return false
}

// RoleEditable reports whether an admin with the given role may have its
// role or permission set changed. super_admin is immutable.
func RoleEditable(role AdminRole) bool {
	return role != RoleSuperAdmin
}

// Admin status values and transitions. Admins start pending, are activated
// once, and can then be toggled between active and inactive.
const (
	AdminStatusPending  = "pending"
	AdminStatusActive   = "active"
	AdminStatusInactive = "inactive"
)

var adminTransitions = map[string][]string{
	AdminStatusPending:  {AdminStatusActive},
	AdminStatusActive:   {AdminStatusInactive},
	AdminStatusInactive: {AdminStatusActive},
}

// CanAdminTransition reports whether from → to is a valid admin status edge.
func CanAdminTransition(from, to string) bool {
	for _, next := range adminTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Admin represents an admins row.
type Admin struct {
	ID           uuid.UUID    `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	FullName     string       `json:"full_name"`
	Email        string       `json:"email"`
	Mobile       string       `json:"mobile"`
	Role         AdminRole    `json:"role"`
	Department   string       `json:"department,omitempty"`
	StartDate    time.Time    `json:"start_date"`
	Status       string       `json:"status"`
	Notes        string       `json:"notes,omitempty"`
	Permissions  []Permission `json:"permissions"`
	PasswordHash string       `json:"-"`
	LastLogin    *time.Time   `json:"last_login,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
