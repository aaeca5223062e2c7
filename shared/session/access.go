package session

// Decision is the outcome of an access check.
type Decision int

const (
	Allowed Decision = iota + 1
	DeniedUnauthenticated
	DeniedRole
)

func (d Decision) Allowed() bool {
	return d == Allowed
}

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case DeniedUnauthenticated:
		return "denied_unauthenticated"
	case DeniedRole:
		return "denied_role"
	default:
		return "unknown"
	}
}

// CanAccess decides whether sess may enter a flow that requires requiredRole.
// An empty requiredRole only demands a signed-in user. ADMIN satisfies USER.
func CanAccess(sess Session, requiredRole Role) Decision {
	if !sess.Authenticated() {
		return DeniedUnauthenticated
	}

	switch requiredRole {
	case "", RoleUser:
		return Allowed
	case RoleAdmin:
		if sess.IsAdmin() {
			return Allowed
		}

		return DeniedRole
	default:
		return DeniedRole
	}
}

// CanAccessAny allows the session when any of roles is satisfied; no roles behaves like CanAccess with "".
func CanAccessAny(sess Session, roles ...Role) Decision {
	if len(roles) == 0 {
		return CanAccess(sess, "")
	}

	decision := DeniedRole
	for _, role := range roles {
		if decision = CanAccess(sess, role); decision.Allowed() {
			return decision
		}

		if decision == DeniedUnauthenticated {
			return decision
		}
	}

	return decision
}
