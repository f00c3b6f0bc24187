package poll

// User is the minimal record of a voter as returned by the voter listing
// endpoint.
type User struct {
	ID         string
	Username   string
	GlobalName string
	Bot        bool
}

func userFromPayload(pl UserPayload) *User {
	return &User{
		ID:         pl.ID,
		Username:   pl.Username,
		GlobalName: pl.GlobalName,
		Bot:        pl.Bot,
	}
}

// DisplayName prefers the user's global display name over the account name.
func (u *User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
