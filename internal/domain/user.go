package domain

import (
	"context"
	"time"

	"github.com/airdroplab/backend/internal/entity"
	"github.com/airdroplab/backend/internal/kv"
	"github.com/airdroplab/backend/internal/model"
	"github.com/airdroplab/backend/pkg/errorx"
)

// User returns a copy of the current user record.
func (a *App) User() entity.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneUser(a.user)
}

// ConnectedUsers returns a copy of every user ever seen, one entry per
// distinct id. The collection is never pruned.
func (a *App) ConnectedUsers() []entity.User {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := make([]entity.User, 0, len(a.connectedUsers))
	for _, u := range a.connectedUsers {
		result = append(result, cloneUser(u))
	}

	return result
}

func (a *App) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	return &model.GetUserResponse{User: a.User()}, nil
}

func (a *App) GetConnectedUsers(
	ctx context.Context, req *model.GetConnectedUsersRequest,
) (*model.GetConnectedUsersResponse, error) {
	return &model.GetConnectedUsersResponse{Users: a.ConnectedUsers()}, nil
}

// CompleteTask marks the task complete for the current user and credits its
// points. Completing an already-completed task changes nothing.
func (a *App) CompleteTask(
	ctx context.Context, req *model.CompleteTaskRequest,
) (*model.CompleteTaskResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user := cloneUser(a.user)
	if user.HasCompleted(req.AirdropID, req.TaskID) {
		return &model.CompleteTaskResponse{TotalPoints: user.TotalPoints}, nil
	}

	airdrop := a.findAirdrop(req.AirdropID)
	if airdrop == nil {
		return nil, errorx.New(errorx.NotFound, "Airdrop not found")
	}

	task := airdrop.Task(req.TaskID)
	if task == nil {
		return nil, errorx.New(errorx.NotFound, "Task not found")
	}

	user.CompletedTasks[req.AirdropID] = append(user.CompletedTasks[req.AirdropID], req.TaskID)
	user.TotalPoints += task.Points

	a.updateUserLocked(ctx, user)
	return &model.CompleteTaskResponse{TotalPoints: user.TotalPoints}, nil
}

// UpdateUser replaces the current user record and mirrors it into the
// connected-users collection.
func (a *App) UpdateUser(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.updateUserLocked(ctx, cloneUser(req.User))
	return &model.UpdateUserResponse{}, nil
}

// UpdateUserPoints sets the points balance of any known user. There is no
// floor: a negative balance is accepted, the initiating surface is expected
// to validate.
func (a *App) UpdateUserPoints(
	ctx context.Context, req *model.UpdateUserPointsRequest,
) (*model.UpdateUserPointsResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()
	if a.user.ID == req.UserID {
		user := cloneUser(a.user)
		user.TotalPoints = req.Points
		user.LastActive = now
		a.user = user
		kv.Set(a.store, kv.KeyUser, a.user)
		a.saveUserToStore(ctx, user)
	}

	for i := range a.connectedUsers {
		if a.connectedUsers[i].ID == req.UserID {
			a.connectedUsers[i].TotalPoints = req.Points
			a.connectedUsers[i].LastActive = now
			a.saveUserToStore(ctx, a.connectedUsers[i])
		}
	}

	kv.Set(a.store, kv.KeyConnectedUsers, a.connectedUsers)
	return &model.UpdateUserPointsResponse{}, nil
}

// ClaimWelcomeBonus credits the one-time welcome bonus. A repeated claim is
// reported, not credited again.
func (a *App) ClaimWelcomeBonus(
	ctx context.Context, req *model.ClaimWelcomeBonusRequest,
) (*model.ClaimWelcomeBonusResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if kv.Get(a.store, kv.KeyWelcomeBonusClaimed, false) {
		return &model.ClaimWelcomeBonusResponse{
			Claimed:     false,
			TotalPoints: a.user.TotalPoints,
		}, nil
	}

	user := cloneUser(a.user)
	user.TotalPoints += a.cfg.Reward.WelcomeBonus
	a.updateUserLocked(ctx, user)
	kv.Set(a.store, kv.KeyWelcomeBonusClaimed, true)

	return &model.ClaimWelcomeBonusResponse{
		Claimed:     true,
		TotalPoints: user.TotalPoints,
	}, nil
}

// updateUserLocked is the single write path for user records: it stamps
// lastActive, replaces the current user when the id matches, merges-or-
// appends into the connected-users collection, and writes through to both
// backends. Callers hold a.mu.
func (a *App) updateUserLocked(ctx context.Context, user entity.User) {
	user.LastActive = time.Now()

	if a.user.ID == user.ID || a.user.ID == "" {
		a.user = user
		kv.Set(a.store, kv.KeyUser, a.user)
	}

	found := false
	for i := range a.connectedUsers {
		if a.connectedUsers[i].ID == user.ID {
			a.connectedUsers[i] = user
			found = true
			break
		}
	}
	if !found {
		a.connectedUsers = append(a.connectedUsers, user)
	}

	kv.Set(a.store, kv.KeyConnectedUsers, a.connectedUsers)
	a.saveUserToStore(ctx, user)
}

func (a *App) saveUserToStore(ctx context.Context, user entity.User) {
	if !a.db.Ready() {
		return
	}

	if err := a.userRepo.Save(ctx, &user); err != nil {
		a.logger.Errorf("Cannot save user %s: %v", user.ID, err)
	}
}
