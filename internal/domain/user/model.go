package user

import "fmt"

// Principal identifies an authenticated caller. The draft engine treats it
// as opaque and only compares IDs for turn ownership.
type Principal struct {
	UserID   string
	Username string
}

func (p Principal) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("principal user id is required")
	}

	return nil
}
