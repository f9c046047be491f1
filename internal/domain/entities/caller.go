package entities

// Role is the caller's role supplied by the identity collaborator.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

// Caller identifies who is attempting an operation. The core never issues
// identities; it only consumes them.
type Caller struct {
	UserID string
	Role   Role
}

// Operator reports whether the caller may drive operator-gated transitions.
func (c Caller) Operator() bool {
	return c.Role == RoleOperator || c.Role == RoleAdmin
}

// Owns reports whether the caller is the customer a record belongs to.
func (c Caller) Owns(r RequestRecord) bool {
	return c.Role == RoleCustomer && c.UserID != "" && c.UserID == r.CustomerRef
}
