package auth

// RegisterDTO is the transport shape for organisation + first admin signup.
type RegisterDTO struct {
	OrgName   string `json:"orgName"`
	AdminName string `json:"adminName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d RegisterDTO) Validate() error {
	if d.OrgName == "" || d.AdminName == "" || d.Email == "" || d.Password == "" {
		return ValidationError{Msg: "all fields required"}
	}
	return nil
}

// Validate checks required fields and returns a ValidationError on failure.
func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token        string              `json:"token"`
	Organisation OrganisationSummary `json:"organisation"`
	User         UserSummary         `json:"user"`
}
