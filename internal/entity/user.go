package entity

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

type User struct {
	ID         int64     `json:"id" validate:"required"`
	Name       string    `json:"nombre"`
	Email      string    `json:"email" validate:"required"`
	TaxID      string    `json:"rucCedula,omitempty"`
	Role       Role      `json:"role"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  Timestamp `json:"createdAt"`
	OrderCount int       `json:"totalPedidos,omitempty"`
}

// Identity is what the session knows about the logged-in user.
type Identity struct {
	UserID int64  `json:"userId"`
	Name   string `json:"nombre"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	TaxID    string `json:"rucCedula" validate:"required"`
}

type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// AuthResponse is returned by login, register and Google sign-in.
type AuthResponse struct {
	Token  string `json:"token"`
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
	Name   string `json:"nombre"`
	Email  string `json:"email" validate:"required"`
	Role   Role   `json:"role"`
}

func (a AuthResponse) Identity() Identity {
	return Identity{UserID: a.UserID, Name: a.Name, Email: a.Email, Role: a.Role}
}
