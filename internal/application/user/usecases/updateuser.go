package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	Actor    actor.Actor
	UserID   uint
	Name     *string
	Surname  *string
	Email    *string
	Role     *string
	Password *string
}

// UpdateUserUseCase covers both self-service profile edits and admin user
// management. Role changes are admin-only and take effect for all subsequent
// permission checks as soon as the update resolves.
type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID, "actor_id", cmd.Actor.ID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("userId", "user ID is required")
	}

	isSelf := cmd.Actor.ID == cmd.UserID
	isAdmin := permission.Can(cmd.Actor, permission.ActionManageUsers, 0)

	if !isSelf && !isAdmin {
		return nil, errors.NewForbiddenError(permission.ActionManageUsers.String())
	}
	if cmd.Role != nil && !isAdmin {
		return nil, errors.NewForbiddenError(permission.ActionManageUsers.String())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	if cmd.Name != nil || cmd.Surname != nil {
		name := u.Name()
		surname := u.Surname()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		if cmd.Surname != nil {
			surname = *cmd.Surname
		}
		if err := u.UpdateProfile(name, surname); err != nil {
			return nil, err
		}
	}

	if cmd.Email != nil {
		email, err := valueobjects.NewEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError("email", err.Error())
		}
		if !email.Equals(u.Email()) {
			exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
			if err != nil {
				return nil, errors.NewTransportError(err, "failed to check email uniqueness")
			}
			if exists {
				return nil, errors.NewConflictError("email is already registered")
			}
			if err := u.ChangeEmail(email); err != nil {
				return nil, err
			}
		}
	}

	if cmd.Role != nil {
		if err := u.ChangeRole(actor.Role(*cmd.Role)); err != nil {
			return nil, err
		}
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < minPasswordLength {
			return nil, errors.NewValidationError("password", "password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := u.ChangePassword(hash); err != nil {
			return nil, err
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewTransportError(err, "failed to update user")
	}

	uc.logger.Infow("user updated", "user_id", u.ID(), "role", u.Role())

	return dto.ToUserDTO(u), nil
}
