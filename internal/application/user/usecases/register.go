package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Name     string
	Surname  string
	Email    string
	Password string
}

// RegisterUseCase creates a new client account. Every self-registered user
// starts as a client; staff roles are granted later by an admin.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	notifier WelcomeNotifier
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	notifier WelcomeNotifier,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResultDTO, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password", "password must be at least 8 characters")
	}

	email, err := valueobjects.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("email", err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "email", email.String(), "error", err)
		return nil, errors.NewTransportError(err, "failed to check email uniqueness")
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(cmd.Name, cmd.Surname, email, hash)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "email", email.String(), "error", err)
		return nil, errors.NewTransportError(err, "failed to save user")
	}

	token, err := uc.tokens.Generate(actor.Actor{ID: u.ID(), Role: u.Role()})
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyWelcome(email.String(), u.Name()); err != nil {
			uc.logger.Warnw("failed to send welcome email", "email", email.String(), "error", err)
		}
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "email", email.String())

	return &dto.AuthResultDTO{Token: token, User: *dto.ToUserDTO(u)}, nil
}
