package entity

import (
	"time"

	"golang.org/x/exp/slices"
)

// GuestUserID keys the local user record until a wallet connects; on
// connection the record is re-keyed to the wallet address.
const GuestUserID = "guest"

type User struct {
	ID string `json:"id" gorm:"primaryKey"`

	WalletAddress string `json:"walletAddress"`
	Telegram      string `json:"telegram"`
	Twitter       string `json:"twitter"`
	Discord       string `json:"discord"`

	// CompletedTasks maps an airdrop id to the ids of its tasks the user has
	// completed. Entries are append-only, a task id appears at most once.
	CompletedTasks StringArrayMap `json:"completedTasks" gorm:"type:text"`

	TotalPoints int64 `json:"totalPoints"`

	IsConnected bool   `json:"isConnected"`
	Balance     string `json:"balance"`
	Wallet      string `json:"wallet"`

	JoinedAt   time.Time `json:"joinedAt"`
	LastActive time.Time `json:"lastActive"`
}

// HasCompleted reports whether the user already completed the task of the
// given airdrop.
func (u *User) HasCompleted(airdropID, taskID string) bool {
	return slices.Contains(u.CompletedTasks[airdropID], taskID)
}
