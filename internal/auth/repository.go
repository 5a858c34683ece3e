package auth

// PlayerRepository defines the data-access contract.
// Service depends ONLY on this interface.
type PlayerRepository interface {
	Save(player *Player) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*Player, error)
}
