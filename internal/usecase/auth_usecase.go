package usecase

import (
	"context"
	"fmt"
	"strconv"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/delivery/http/middleware"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/internal/service"
	"salon-booking-api/pkg/apperror"
	"salon-booking-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID int) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID int, req *dto.ChangePasswordRequest) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

func (u *authUsecase) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = entity.RoleAdmin
	}

	user := &entity.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
		Role:     role,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Create(tx, user); err != nil {
		if isUniqueViolation(err, "email") {
			return nil, apperror.Conflict("a user with email %s already exists", req.Email)
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if err := u.auditService.Record(tx, &actorID, entity.AuditActionUserRegister, "user", strconv.Itoa(user.ID), entity.JSON{"role": role}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit user registration: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// Login verifies credentials and issues an access/refresh token pair.
// A missing user and a wrong password collapse into the same failure
// so account existence cannot be enumerated.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to look up user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}
	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	// Track issued token ids so logout can revoke them.
	accessKey := sessionKey(jwt.AccessToken, user.ID, accessTokenID)
	refreshKey := sessionKey(jwt.RefreshToken, user.ID, refreshTokenID)
	if err := u.redisClient.Set(ctx, accessKey, 1, u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access session: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, 1, u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh session: %+v", err)
		return nil, err
	}

	u.log.Infof("User logged in: id=%d", user.ID)
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID int, accessTokenID, refreshTokenID string) error {
	keys := []string{sessionKey(jwt.AccessToken, userID, accessTokenID)}
	if refreshTokenID != "" {
		keys = append(keys, sessionKey(jwt.RefreshToken, userID, refreshTokenID))
	}
	if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
		u.log.Warnf("Failed to revoke sessions for user %d: %+v", userID, err)
		return err
	}
	u.log.Infof("User logged out: id=%d", userID)
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("invalid or expired token")
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, apperror.Unauthorized("invalid token type")
	}

	refreshKey := sessionKey(jwt.RefreshToken, claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh session: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, apperror.Unauthorized("token has been revoked")
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", claims.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("invalid or expired token")
	}

	// Rotate: revoke the presented refresh token, issue a fresh pair.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to rotate refresh session: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if err := u.redisClient.Set(ctx, sessionKey(jwt.AccessToken, user.ID, accessTokenID), 1, u.jwtService.GetAccessExpiry()).Err(); err != nil {
		return nil, err
	}
	if err := u.redisClient.Set(ctx, sessionKey(jwt.RefreshToken, user.ID, refreshTokenID), 1, u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user with id %d not found", userID)
	}
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID int, req *dto.ChangePasswordRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return err
	}
	if user == nil {
		return apperror.NotFound("user with id %d not found", userID)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return apperror.InvalidArgument("current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}
	user.Password = string(hashedPassword)

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update password for user %d: %+v", userID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit password change: %+v", err)
		return err
	}

	return nil
}

// sessionKey builds the Redis key under which an issued token id is
// tracked until it expires or is revoked.
func sessionKey(tokenType jwt.TokenType, userID int, tokenID string) string {
	return fmt.Sprintf("%s_token:%d:%s", tokenType, userID, tokenID)
}
