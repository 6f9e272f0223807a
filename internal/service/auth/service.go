package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/talentbase/hrms-backend-go/internal/domain/auth"
	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/domain/user"
	"github.com/talentbase/hrms-backend-go/internal/pkg/database"
	"github.com/talentbase/hrms-backend-go/internal/pkg/jwt"
	"github.com/talentbase/hrms-backend-go/internal/pkg/oauth"
	"github.com/talentbase/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authServiceImpl struct {
	db            *database.DB
	userRepo      user.UserRepository
	employeeRepo  employee.EmployeeRepository
	jwtService    jwt.Service
	jwtRepo       postgresql.JWTRepository
	googleService oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	jwtRepo postgresql.JWTRepository,
	googleService oauth.GoogleService,
) AuthService {
	return &authServiceImpl{
		db:            db,
		userRepo:      userRepo,
		employeeRepo:  employeeRepo,
		jwtService:    jwtService,
		jwtRepo:       jwtRepo,
		googleService: googleService,
	}
}

// Register creates the identity and, for roles that own HR data, the employee
// profile as an explicit step of the same transaction. Profile creation is
// part of the registration workflow, not a side effect of the user insert.
func (s *authServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("hash password: %w", err)
	}
	hashedStr := string(hashed)

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.userRepo.Create(txCtx, user.User{
			Username:     req.Username,
			PasswordHash: &hashedStr,
			Role:         user.Role(req.Role),
		})
		if err != nil {
			return err
		}

		if created.HasProfile() {
			profile, err := s.employeeRepo.Create(txCtx, employee.EmployeeProfile{
				UserID: created.ID,
				Salary: decimal.Zero,
			})
			if err != nil {
				return err
			}
			created.EmployeeID = &profile.ID
		}

		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, created)
}

// Login verifies the password and issues an access/refresh token pair.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if u.PasswordHash == nil {
		// OAuth-only account
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	s.attachEmployeeID(ctx, &u)

	return s.issueTokens(ctx, u)
}

// LoginWithGoogle finishes the OAuth2 code flow. First-time users are
// registered as Employee with a profile, mirroring the password path.
func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	info, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	provider := "google"
	u, err := s.userRepo.GetByOAuth(ctx, provider, info.GoogleID)
	if errors.Is(err, user.ErrUserNotFound) {
		err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
			u, err = s.userRepo.Create(txCtx, user.User{
				Username:        info.Email,
				Role:            user.RoleEmployee,
				OAuthProvider:   &provider,
				OAuthProviderID: &info.GoogleID,
			})
			if err != nil {
				return err
			}

			profile, err := s.employeeRepo.Create(txCtx, employee.EmployeeProfile{
				UserID: u.ID,
				Salary: decimal.Zero,
			})
			if err != nil {
				return err
			}
			u.EmployeeID = &profile.ID
			return nil
		})
	}
	if err != nil {
		return auth.TokenResponse{}, err
	}

	s.attachEmployeeID(ctx, &u)

	return s.issueTokens(ctx, u)
}

// RefreshToken validates the refresh token, rotates it, and issues a new pair.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := s.jwtRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	decoded, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := decoded.Get("type")
	if tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := decoded.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if err := s.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, err
	}

	s.attachEmployeeID(ctx, &u)

	return s.issueTokens(ctx, u)
}

// Logout revokes the refresh token.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return s.jwtRepo.RevokeRefreshToken(ctx, refreshToken)
}

func (s *authServiceImpl) attachEmployeeID(ctx context.Context, u *user.User) {
	if !u.HasProfile() || u.EmployeeID != nil {
		return
	}
	profile, err := s.employeeRepo.GetByUserID(ctx, u.ID)
	if err == nil {
		u.EmployeeID = &profile.ID
	}
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.jwtRepo.CreateRefreshToken(ctx, u.ID, refreshToken, refreshExp); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("persist refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
		Role:                  string(u.Role),
	}, nil
}
