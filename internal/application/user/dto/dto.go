package dto

import (
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/domain/view"
)

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserListItemDTO struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Surname string   `json:"surname,omitempty"`
	Email   string   `json:"email"`
	Role    string   `json:"role"`
	Actions []string `json:"actions"`
}

type AuthResultDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Surname:   u.Surname(),
		Email:     u.Email().String(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func ToUserListItemDTO(item view.UserItem) UserListItemDTO {
	actions := make([]string, 0, len(item.Actions))
	for _, a := range item.Actions {
		actions = append(actions, a.String())
	}
	return UserListItemDTO{
		ID:      item.User.ID(),
		Name:    item.User.Name(),
		Surname: item.User.Surname(),
		Email:   item.User.Email().String(),
		Role:    item.User.Role().String(),
		Actions: actions,
	}
}
