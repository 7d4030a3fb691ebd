package dto

// UserRef referencia expandida a un usuario (vendedor o comprador).
// Resolved=false indica que el usuario ya no existe en el directorio; solo se conoce el ID.
type UserRef struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Resolved bool   `json:"resolved"`
}
