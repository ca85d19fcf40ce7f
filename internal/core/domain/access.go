package domain

// Role defines the two dashboard roles: an unscoped manager and a
// single-store-scoped operator.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStoreAdmin Role = "store-admin"
)

// IsValid reports whether r is a recognised role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStoreAdmin
}

// ScopePolicy controls how tightly store-admins are scoped. Under
// PolicyStrict a store-admin sees and writes only its assigned store; under
// PolicyRelaxed it sees and writes every store's transactions but is still
// barred from store management and analytics.
type ScopePolicy string

const (
	PolicyStrict  ScopePolicy = "strict"
	PolicyRelaxed ScopePolicy = "relaxed"
)

// AccessScope captures the caller's role and assigned store for one request.
// It is built once from the authenticated session and is immutable until
// logout; every method is a pure predicate over its inputs.
type AccessScope struct {
	Role      Role
	StoreName string // Assigned store for store-admins, empty for admins
	Policy    ScopePolicy
}

// VisibleStores returns the subset of stores the scope may see: all of them
// for admins, only the assigned store (if registered) for store-admins.
func (s AccessScope) VisibleStores(all []Store) []Store {
	if s.Role == RoleAdmin {
		return all
	}
	visible := make([]Store, 0, 1)
	for _, store := range all {
		if store.Name == s.StoreName {
			visible = append(visible, store)
		}
	}
	return visible
}

// VisibleTransactions returns the subset of transactions the scope may see.
// Relaxed store-admins see everything; strict store-admins only their own
// store's records.
func (s AccessScope) VisibleTransactions(all []Transaction) []Transaction {
	if s.Role == RoleAdmin || s.Policy == PolicyRelaxed {
		return all
	}
	visible := make([]Transaction, 0, len(all))
	for _, txn := range all {
		if txn.StoreName == s.StoreName {
			visible = append(visible, txn)
		}
	}
	return visible
}

// WritableStoreNames returns the names of registered stores a new transaction
// may be attributed to under this scope.
func (s AccessScope) WritableStoreNames(all []Store) []string {
	names := make([]string, 0, len(all))
	for _, store := range all {
		if s.Role == RoleAdmin || s.Policy == PolicyRelaxed || store.Name == s.StoreName {
			names = append(names, store.Name)
		}
	}
	return names
}

// CanWriteStore reports whether a new transaction may be attributed to the
// named store. Admins may attribute to any name, registered or not (the
// snapshot may not yet contain a store record for seeded history); scoped
// roles are restricted to their writable set.
func (s AccessScope) CanWriteStore(all []Store, name string) bool {
	if name == "" {
		return false
	}
	if s.Role == RoleAdmin || s.Policy == PolicyRelaxed {
		return true
	}
	for _, writable := range s.WritableStoreNames(all) {
		if writable == name {
			return true
		}
	}
	return false
}

// CanManageStores reports whether the scope may create, edit or delete store
// metadata. Admin only.
func (s AccessScope) CanManageStores() bool {
	return s.Role == RoleAdmin
}

// CanViewAnalytics reports whether the scope may view the time-bucketed
// analytics. Admin only.
func (s AccessScope) CanViewAnalytics() bool {
	return s.Role == RoleAdmin
}

// AssignedStoreResolved reports whether the scope's assigned store matches a
// registered store. Always true for admins. A false result is not an error by
// itself; it is the unresolved-scope condition surfaced to the user.
func (s AccessScope) AssignedStoreResolved(all []Store) bool {
	if s.Role == RoleAdmin {
		return true
	}
	for _, store := range all {
		if store.Name == s.StoreName {
			return true
		}
	}
	return false
}
