package entities

// UserRole is the in-company system role. Only admin is exercised today;
// operational and viewer exist for forward compatibility.

type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleOperational UserRole = "operational"
	UserRoleViewer      UserRole = "viewer"
)

// User is an authenticated actor bound 1:1 to a Company.
//
// Storage model (DynamoDB):
//   - PK: id (matches the external identity provider subject)
//
// CompanyRole mirrors Company.Role so access-control checks do not need a
// second read. Users are created once at registration and are immutable in
// scope.
type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	CompanyID   string      `json:"company_id"`
	Role        UserRole    `json:"role"`
	CompanyRole CompanyRole `json:"company_role"`
}
