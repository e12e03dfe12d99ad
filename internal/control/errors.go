package control

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProfiles reports an activation request without profile names.
	ErrNoProfiles = errors.New("invalid profile specification; use 'tuned-adm list' to get all available profiles")
	// ErrBusy reports that another tuned-adm invocation holds the admin lock.
	ErrBusy = errors.New("another tuned-adm invocation is changing profiles")
)

// UnknownProfileError reports a requested profile that is not in the catalog.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("profile %s doesn't exist; use 'tuned-adm list' to get all available profiles", e.Name)
}

// PrivilegeError reports an operation attempted without super-user rights.
type PrivilegeError struct {
	Op   string
	EUID int
}

func (e *PrivilegeError) Error() string {
	return fmt.Sprintf("only root can %s (effective uid %d)", e.Op, e.EUID)
}

const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitPrivilege = 2
)

// ExitCode maps an operation error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var perr *PrivilegeError
	if errors.As(err, &perr) {
		return ExitPrivilege
	}
	return ExitFailure
}
