package auth

// Principal is the authenticated identity making a request. It is resolved
// once by the auth middleware and passed explicitly into every permission
// check; handlers never reach back into token internals.
type Principal struct {
	ID          int64
	Username    string
	IsStaff     bool
	IsSuperuser bool
}

// HasStaffAccess reports whether the principal may perform staff-only
// operations. A superuser is always staff-equivalent.
func (p Principal) HasStaffAccess() bool {
	return p.IsStaff || p.IsSuperuser
}
