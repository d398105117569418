package models

type Permission string

const (
	PermissionAdmin        Permission = "admin"
	PermissionCollaborator Permission = "colaborador"
)

type User struct {
	ID         int        `json:"id"`
	Username   string     `json:"username"`
	Permission Permission `json:"permissao"`
	CreatedAt  *Timestamp `json:"data_criacao,omitempty"`
}

// IsAdmin reports whether the user may manage the electrician, tool/PPE and
// vehicle catalogs. A nil user is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Permission == PermissionAdmin
}
