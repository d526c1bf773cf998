package domain

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents a user of the application in the domain.
type User struct {
	UserID         string       `json:"userID"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`
	EmailVerified  bool         `json:"emailVerified"`
	AuditFields
}

// ExternalIdentity is who an OAuth provider says signed in.
type ExternalIdentity struct {
	Provider       AuthProvider
	ProviderUserID string
	Email          string
	Name           string
	EmailVerified  bool
}
