package schema

// User is an account profile as exposed to clients. The password digest never
// leaves the store layer.
type User struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	Username        string   `json:"username"`
	Avatar          string   `json:"avatar"`
	IsGuest         bool     `json:"isGuest"`
	Achievements    []string `json:"achievements"`
	EasterEggMaster bool     `json:"easterEggMaster"`
}

// StoredUser is the persisted form of User.
type StoredUser struct {
	User
	PasswordHash string `json:"passwordHash"`
}
