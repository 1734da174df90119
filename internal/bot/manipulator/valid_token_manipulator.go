package manipulator

import (
	"context"

	"github.com/central-university-dev/go-message-sender/internal/bot/repository"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
	"github.com/central-university-dev/go-message-sender/internal/domain/models"
)

type ValidTokenManipulator struct {
	repo       repository.ValidTokenRepository
	value      *string
	validToken *models.ValidToken
}

// NewValidTokenManipulator принимает ровно один из value и validToken.
func NewValidTokenManipulator(
	repo repository.ValidTokenRepository,
	value *string,
	validToken *models.ValidToken,
) (*ValidTokenManipulator, error) {
	if (value == nil) == (validToken == nil) {
		return nil, &domainerrors.ErrInvalidConstruction{Manipulator: "valid_token"}
	}

	return &ValidTokenManipulator{
		repo:       repo,
		value:      value,
		validToken: validToken,
	}, nil
}

// Get загружает токен по точному совпадению строки.
func (m *ValidTokenManipulator) Get(ctx context.Context) (*models.ValidToken, error) {
	if m.value == nil {
		return nil, &domainerrors.ErrMissingLookupKey{Manipulator: "valid_token", Operation: "Get"}
	}

	validToken, err := m.repo.FindByValue(ctx, *m.value)
	if err != nil {
		return nil, err
	}

	m.validToken = validToken

	return validToken, nil
}

// Create сохраняет новый незаявленный токен с удерживаемым значением.
func (m *ValidTokenManipulator) Create(ctx context.Context) (*models.ValidToken, error) {
	if m.value == nil {
		return nil, &domainerrors.ErrMissingLookupKey{Manipulator: "valid_token", Operation: "Create"}
	}

	validToken := &models.ValidToken{Token: *m.value}

	if err := m.repo.Create(ctx, validToken); err != nil {
		return nil, err
	}

	m.validToken = validToken

	return validToken, nil
}
