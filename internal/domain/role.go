package domain

// Role ids are well-known constants seeded at install time. Application
// logic branches on the id, never the display name.
const (
	RoleAdmin   int32 = 1
	RoleManager int32 = 2
	RoleHelper  int32 = 3
)

type Role struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}
