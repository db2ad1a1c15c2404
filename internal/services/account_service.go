package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type TokenIssuerInterface interface {
	CreateToken(userID uuid.UUID) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      TokenIssuerInterface
	log         *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens TokenIssuerInterface, log *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		log:         log,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	username := strings.TrimSpace(request.Username)
	email := normalizeEmail(request.Email)

	fields := map[string]string{}
	if utf8.RuneCountInString(username) < 3 {
		fields["username"] = "Username must be at least 3 characters long"
	}
	if !emailPattern.MatchString(email) {
		fields["email"] = "Please enter a valid email address"
	}
	if utf8.RuneCountInString(request.Password) < 6 {
		fields["password"] = "Password must be at least 6 characters long"
	}
	if len(fields) > 0 {
		return utils.NewValidationError(fields)
	}

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	existing, err = a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	newAccount := &db_models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Preferences:  []string{},
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.duplicateCause(ctx, username)
		}
		return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}

	a.log.Info("account registered", zap.String("account_id", newAccount.ID.String()))
	return nil
}

func (a *AccountService) duplicateCause(ctx context.Context, username string) error {
	if existing, err := a.accountRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return utils.ErrUsernameTaken
	}
	return utils.ErrEmailAlreadyExists
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &response_models.LoginResponse{
		Token: token,
		User: response_models.AccountSummary{
			ID:       account.ID.String(),
			Username: account.Username,
			Email:    account.Email,
		},
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error) {
	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(account), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	account.Phone = strings.TrimSpace(request.Phone)
	account.Address = strings.TrimSpace(request.Address)
	account.Preferences = splitPreferences(request.Preferences.String())

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	return toProfileResponse(account), nil
}

func (a *AccountService) findAccount(ctx context.Context, userID string) (*db_models.Account, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, utils.ErrAccountNotFound
	}

	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// splitPreferences turns "food, museums,, hiking" into its trimmed, non-empty parts.
func splitPreferences(raw string) []string {
	prefs := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefs = append(prefs, p)
		}
	}
	return prefs
}

func toProfileResponse(account *db_models.Account) *response_models.ProfileResponse {
	prefs := account.Preferences
	if prefs == nil {
		prefs = []string{}
	}
	return &response_models.ProfileResponse{
		ID:          account.ID.String(),
		Username:    account.Username,
		Email:       account.Email,
		Phone:       account.Phone,
		Address:     account.Address,
		Preferences: prefs,
		CreatedAt:   account.CreatedAt,
	}
}
