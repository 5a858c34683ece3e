package auth

// Player is the domain entity. DisplayName is what the leaderboard
// shows; Role gates the admin routes.
type Player struct {
	ID          string
	DisplayName string
	Email       string
	Password    string
	Role        string
}

const (
	RolePlayer = "PLAYER"
	RoleAdmin  = "ADMIN"
)
