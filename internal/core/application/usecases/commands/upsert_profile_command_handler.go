package commands

import (
	"context"
	"errors"
	"time"

	"orderlink/internal/core/domain/model/account"
	"orderlink/internal/pkg/errs"
)

// UpsertProfileCommandHandler handles owner profile settings.
// Creates the profile on first save and merges non-blank fields into the
// stored profile afterwards.
type UpsertProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewUpsertProfileCommandHandler creates a handler for profile saves.
// Requires a ProfileUoWFactory for transactional persistence.
func NewUpsertProfileCommandHandler(uowFactory ProfileUoWFactory) UpsertProfileCommandHandler {
	return UpsertProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile save. The first save for an owner must carry
// both fields because there is nothing stored to fall back on; later saves
// may carry either.
func (h *UpsertProfileCommandHandler) Handle(ctx context.Context, cmd UpsertProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.ProfileRepository()
	now := time.Now().UTC()

	profile, err := profileRepo.Get(ctx, cmd.OwnerID())
	switch {
	case err == nil:
		if err = profile.Merge(cmd.BusinessName(), cmd.BusinessPhoneNumber(), now); err != nil {
			return err
		}
	case isNotFound(err):
		profile, err = account.NewProfile(cmd.OwnerID(), cmd.BusinessName(), cmd.BusinessPhoneNumber(), now)
		if err != nil {
			return err
		}
	default:
		return err
	}

	if err = profileRepo.Upsert(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func isNotFound(err error) bool {
	var notFoundErr *errs.ObjectNotFoundError
	return errors.As(err, &notFoundErr)
}
