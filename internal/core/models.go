package core

type RegisterMessage struct {
	Username string
	Email    string
	Phone    string
	Password string
}

type LoginMessage struct {
	Username string
	Password string
}

// UserRecord is the outward-facing user shape, the password hash never
// leaves the core.
type UserRecord struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type ContactRecord struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}
