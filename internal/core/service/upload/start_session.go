package upload

import (
	"context"
	"errors"
	"fmt"

	"partflow/internal/core/domain"
)

// StartOrReuseSession returns the user's open session id, creating a
// new session only when none exists. Retried starts never fork a second
// campaign: a concurrent creation race is resolved by the storage
// layer's one-open-session-per-user constraint.
func (u *uploadService) StartOrReuseSession(ctx context.Context, userID string) (string, error) {

	existing, err := u.uow.SessionRepo().FindOpenByUserID(ctx, userID)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return "", err
	}

	session := domain.Session{
		ID:     u.ids.SessionID(),
		UserID: userID,
		Status: domain.SessionStatusInProgress,
	}

	if createErr := u.uow.SessionRepo().Create(ctx, session); createErr != nil {
		if errors.Is(createErr, domain.ErrAlreadyExists) {
			winner, findErr := u.uow.SessionRepo().FindOpenByUserID(ctx, userID)
			if findErr != nil {
				return "", findErr
			}
			return winner.ID, nil
		}
		return "", fmt.Errorf("could not create session: %w", createErr)
	}

	return session.ID, nil
}
