package command

import (
	"fmt"
	"time"

	"github.com/sardorbek/bozor/internal/user/domain"
)

// UpdateProfileCommand represents the command to update a user's profile
type UpdateProfileCommand struct {
	UserID    uint
	FullName  string
	Phone     string
	AvatarURL string
}

// UpdateProfileHandler handles profile updates
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the update profile command
func (h *UpdateProfileHandler) Handle(cmd UpdateProfileCommand) (*domain.Profile, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}

	if _, err := h.repo.FindByID(cmd.UserID); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		UserID:    cmd.UserID,
		FullName:  cmd.FullName,
		Phone:     cmd.Phone,
		AvatarURL: cmd.AvatarURL,
		UpdatedAt: time.Now(),
	}

	if err := h.repo.SaveProfile(profile); err != nil {
		return nil, err
	}

	return profile, nil
}
