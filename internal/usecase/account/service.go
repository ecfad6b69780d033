package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BruksfildServices01/store-ratings/internal/access"
	domain "github.com/BruksfildServices01/store-ratings/internal/domain/account"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type TokenIssuer interface {
	Issue(accountID uint, role models.Role) (string, error)
}

type OwnerAverager interface {
	OwnerAverageAcrossStores(ctx context.Context, ownerID uint) (float64, error)
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     models.Role
}

type Service struct {
	repo    domain.Repository
	hasher  PasswordHasher
	tokens  TokenIssuer
	ratings OwnerAverager

	// dummyHash is compared against on unknown emails so a login for a
	// missing account costs the same as one with a wrong password.
	dummyHash string
}

func NewService(
	repo domain.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	ratings OwnerAverager,
) (*Service, error) {
	dummy, err := hasher.Hash("not-a-real-password!A")
	if err != nil {
		return nil, fmt.Errorf("hash login decoy: %w", err)
	}
	return &Service{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		ratings:   ratings,
		dummyHash: dummy,
	}, nil
}

// Signup registers a rating user.
func (s *Service) Signup(ctx context.Context, in SignupInput) (uint, error) {
	return s.create(ctx, CreateAccountInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Address:  in.Address,
		Role:     models.RoleUser,
	})
}

func (s *Service) AdminCreateAccount(
	ctx context.Context,
	caller access.Identity,
	in CreateAccountInput,
) (uint, error) {

	if _, err := access.Authorize(caller, access.AdminOnly); err != nil {
		return 0, err
	}
	return s.create(ctx, in)
}

// EnsureAdmin creates an admin account unless the email is already taken.
// It backs the operator CLI and therefore takes no caller identity.
func (s *Service) EnsureAdmin(ctx context.Context, in SignupInput) (bool, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.CreateIfAbsent(ctx, &models.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Address:      in.Address,
		Role:         models.RoleAdmin,
	})
}

func (s *Service) create(ctx context.Context, in CreateAccountInput) (uint, error) {
	if !in.Role.Valid() {
		return 0, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	a := models.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Address:      in.Address,
		Role:         in.Role,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "account created", "account_id", a.ID, "role", a.Role)
	return a.ID, nil
}

// Login exchanges credentials for a token. Unknown email and wrong password
// produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (dto.LoginResult, error) {
	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			_ = s.hasher.Compare(s.dummyHash, password)
			return dto.LoginResult{}, domain.ErrInvalidCredentials
		}
		return dto.LoginResult{}, err
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return dto.LoginResult{}, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(a.ID, a.Role)
	if err != nil {
		return dto.LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	return dto.LoginResult{
		Token: tok,
		User:  dto.NewAccountSummary(a),
	}, nil
}

func (s *Service) ChangePassword(
	ctx context.Context,
	caller access.Identity,
	oldPassword string,
	newPassword string,
) error {

	if _, err := access.Authorize(caller, access.AnyRole); err != nil {
		return err
	}

	a, err := s.repo.FindByID(ctx, caller.AccountID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(a.PasswordHash, oldPassword); err != nil {
		return domain.ErrInvalidOldPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePasswordHash(ctx, a.ID, hash)
}

func (s *Service) Me(ctx context.Context, caller access.Identity) (dto.AccountSummary, error) {
	if _, err := access.Authorize(caller, access.AnyRole); err != nil {
		return dto.AccountSummary{}, err
	}
	a, err := s.repo.FindByID(ctx, caller.AccountID)
	if err != nil {
		return dto.AccountSummary{}, err
	}
	return dto.NewAccountSummary(a), nil
}

// AccountDetail is the admin view of one account. Owners also get the
// average over all ratings of all their stores.
func (s *Service) AccountDetail(
	ctx context.Context,
	caller access.Identity,
	id uint,
) (dto.AccountDetail, error) {

	if _, err := access.Authorize(caller, access.AdminOnly); err != nil {
		return dto.AccountDetail{}, err
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.AccountDetail{}, err
	}

	out := dto.AccountDetail{
		AccountRow: dto.AccountRow{
			ID:      a.ID,
			Name:    a.Name,
			Email:   a.Email,
			Address: a.Address,
			Role:    a.Role,
		},
	}
	if a.Role == models.RoleOwner {
		avg, err := s.ratings.OwnerAverageAcrossStores(ctx, a.ID)
		if err != nil {
			return dto.AccountDetail{}, err
		}
		out.AvgRating = &avg
	}
	return out, nil
}
