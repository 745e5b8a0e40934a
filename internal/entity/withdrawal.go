package entity

import (
	"time"

	"github.com/airdroplab/backend/pkg/enum"
)

type WithdrawalStatus string

var (
	WithdrawalPending   = enum.New(WithdrawalStatus("pending"))
	WithdrawalCompleted = enum.New(WithdrawalStatus("completed"))
	WithdrawalFailed    = enum.New(WithdrawalStatus("failed"))
)

// Withdrawal records one points-to-USDC conversion request. It is created in
// pending status and settles to completed with a transaction hash, or to
// failed. Neither terminal status ever transitions again.
type Withdrawal struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"userId" gorm:"index"`

	// Username is a display snapshot taken at creation time, not a foreign
	// reference.
	Username string `json:"username"`

	Amount     int64   `json:"amount"`
	USDCAmount float64 `json:"usdcAmount"`

	Timestamp time.Time        `json:"timestamp"`
	Status    WithdrawalStatus `json:"status"`
	TxHash    string           `json:"txHash,omitempty"`
}
