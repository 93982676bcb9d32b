package domain

// Status ids are well-known constants seeded at install time. The lifecycle
// runs Pending -> Processing -> Ready -> Completed, with Rejected reachable
// from Pending and a rejected order returning to Pending on reassignment.
const (
	StatusPending    int32 = 1
	StatusRejected   int32 = 2
	StatusProcessing int32 = 3
	StatusReady      int32 = 4
	StatusCompleted  int32 = 5
)

type Status struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// ValidStatus reports whether id is one of the seeded lifecycle statuses.
func ValidStatus(id int32) bool {
	return id >= StatusPending && id <= StatusCompleted
}
