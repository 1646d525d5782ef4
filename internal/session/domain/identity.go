package domain

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type (
	Role string

	// Identity is the authenticated party as returned by the backend login call.
	Identity struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email,omitempty"`
		Phone     string `json:"phone,omitempty"`
		AadhaarNo string `json:"aadhaarNo,omitempty"`
		Role      Role   `json:"role"`
	}
)
