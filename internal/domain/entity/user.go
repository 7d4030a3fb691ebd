package entity

import "time"

// Roles informativos del usuario. La autorización nunca depende del rol:
// un mismo principal actúa como comprador o vendedor según la operación.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// UserID identificador tipado de un usuario.
type UserID string

// String devuelve el identificador como texto.
func (id UserID) String() string { return string(id) }

// User representa un usuario registrado por el proveedor de autenticación (solo lectura aquí).
type User struct {
	ID        UserID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// Principal es el actor autenticado de una petición.
type Principal struct {
	ID    UserID
	Email string
}

// IsZero indica si el principal no trae identificador.
func (p Principal) IsZero() bool { return p.ID == "" }
