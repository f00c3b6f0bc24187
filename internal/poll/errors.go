package poll

import "errors"

var (
	// ErrNotAttached is returned by network operations on a poll that is not
	// bound to a message. The caller has to go through a posted or fetched
	// message to reach them.
	ErrNotAttached = errors.New("poll has no attached message")

	// ErrVoterLimit is returned when a voter page size is outside [0, 100].
	ErrVoterLimit = errors.New("voter limit must be between 0 and 100")
)
