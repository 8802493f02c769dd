package domain

import (
	"context"
	"time"
)

type Player struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	PlayerID    int       `gorm:"uniqueIndex;not null;column:player_id" json:"player_id"`
	Username    string    `gorm:"type:varchar(50);unique;not null;column:username" json:"username"`
	Email       string    `gorm:"type:varchar(255);unique;not null;column:email" json:"email"`
	Password    string    `gorm:"type:varchar(255);not null;column:password" json:"-"`
	BankBalance float64   `gorm:"type:decimal(12,2);default:0;column:bank_balance" json:"bank_balance"`
	Score       float64   `gorm:"type:decimal(12,2);default:0;column:score" json:"score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// Identity is the resolved form of a player reference. Resource tables key on
// SurrogateKey; PlayerID is the only value that ever leaves the process.
type Identity struct {
	SurrogateKey uint
	PlayerID     int
	Username     string
}

// PlayerRef addresses a player by either public id or username, never both.
type PlayerRef struct {
	PlayerID *int
	Username string
}

func RefByID(id int) PlayerRef        { return PlayerRef{PlayerID: &id} }
func RefByName(name string) PlayerRef { return PlayerRef{Username: name} }

type SignupRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	BankBalance *float64 `json:"bank_balance,omitempty"`
}

type LoginRequest struct {
	PlayerID int    `json:"player_id"`
	Password string `json:"password"`
}

type UsernameLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"new_password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type PlayerProfile struct {
	PlayerID    int       `json:"player_id"`
	Username    string    `json:"username"`
	BankBalance float64   `json:"bank_balance"`
	Score       float64   `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

type SlotsResponse struct {
	Capacity  int `json:"capacity"`
	Used      int `json:"used"`
	Available int `json:"available"`
}

type AuthRepository interface {
	CreatePlayer(ctx context.Context, username, email, passwordHash string, bankBalance float64) (*Player, error)
	FindByPlayerID(ctx context.Context, playerID int) (*Player, error)
	FindByUsername(ctx context.Context, username string) (*Player, error)
	UpdatePassword(ctx context.Context, surrogateKey uint, passwordHash string) error
}

// IdentityResolver maps a public player reference to the internal identity.
// Every resource repository query filters by Identity.SurrogateKey.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, ref PlayerRef) (Identity, error)
}

type PlayerRepository interface {
	IdentityResolver
	GetProfile(ctx context.Context, surrogateKey uint) (*PlayerProfile, error)
	GetBalance(ctx context.Context, surrogateKey uint) (float64, error)
	GetSlots(ctx context.Context, surrogateKey uint) (SlotsResponse, error)
}
