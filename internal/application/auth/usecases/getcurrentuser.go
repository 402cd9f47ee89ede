package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Warnw("failed to load current user", "user_id", query.UserID, "error", err)
		return nil, err
	}

	result := ToUserDTO(u)
	return &result, nil
}
