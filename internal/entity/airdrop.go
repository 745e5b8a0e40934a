package entity

import (
	"time"

	"github.com/airdroplab/backend/pkg/enum"
)

type AirdropStatus string

var (
	AirdropActive    = enum.New(AirdropStatus("active"))
	AirdropCompleted = enum.New(AirdropStatus("completed"))
	AirdropUpcoming  = enum.New(AirdropStatus("upcoming"))
)

type TaskType string

var (
	TaskTelegram = enum.New(TaskType("telegram"))
	TaskTwitter  = enum.New(TaskType("twitter"))
	TaskDiscord  = enum.New(TaskType("discord"))
	TaskWebsite  = enum.New(TaskType("website"))
	TaskWallet   = enum.New(TaskType("wallet"))
)

// Task belongs to exactly one airdrop. The task list is embedded into the
// airdrop row as a JSON column, not a separate table.
type Task struct {
	ID          string   `json:"id"`
	Type        TaskType `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
	Points      int64    `json:"points"`
	Required    bool     `json:"required"`
}

type Airdrop struct {
	ID string `json:"id" gorm:"primaryKey"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Logo        string `json:"logo"`

	// Reward and TotalReward are display strings, not numeric amounts.
	Reward      string `json:"reward"`
	TotalReward string `json:"totalReward"`

	Participants    int64 `json:"participants"`
	MaxParticipants int64 `json:"maxParticipants"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	Status     AirdropStatus `json:"status"`
	Category   string        `json:"category"`
	Blockchain string        `json:"blockchain"`

	Tasks        Array[Task]   `json:"tasks" gorm:"type:text"`
	Requirements Array[string] `json:"requirements" gorm:"type:text"`

	CreatedAt time.Time `json:"-"`
}

// Task returns the embedded task with the given id, or nil.
func (a *Airdrop) Task(taskID string) *Task {
	for i := range a.Tasks {
		if a.Tasks[i].ID == taskID {
			return &a.Tasks[i]
		}
	}

	return nil
}
