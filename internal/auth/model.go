package auth

// Operator roles. OPERATOR can run the ingestion pipeline, ADMIN can also
// publish and archive recipes.
const (
	RoleOperator = "OPERATOR"
	RoleAdmin    = "ADMIN"
)

// User is an operator account.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
