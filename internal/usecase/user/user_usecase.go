package user

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/infrastructure/auth"
	"github.com/monopay/monopay-api/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 20
	minPasswordLength = 6
	bcryptCost        = 10
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	userRepo  domain.UserRepository
	jwtSvc    auth.JWTService
	mailerSvc domain.MailerService
	logger    *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(
	userRepo domain.UserRepository,
	jwtSvc auth.JWTService,
	mailerSvc domain.MailerService,
	logger *logger.Logger,
) domain.UserUseCase {
	return &UserUseCase{
		userRepo:  userRepo,
		jwtSvc:    jwtSvc,
		mailerSvc: mailerSvc,
		logger:    logger,
	}
}

// SignUp registers a new local account
func (uc *UserUseCase) SignUp(username, password string) (*domain.User, error) {
	uc.logger.Info("Starting user registration",
		zap.String("username", username))

	username = strings.ToLower(strings.TrimSpace(username))

	if err := uc.validateUsername(username); err != nil {
		return nil, err
	}

	if len(password) < minPasswordLength {
		uc.logger.Warn("Registration rejected - password too short",
			zap.String("username", username))
		return nil, domain.NewAppError(domain.ErrCodeInvalidRange, "Password must be at least 6 characters", 400, nil)
	}

	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to check username availability",
			zap.String("username", username),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check username", 500, err)
	}
	if existing != nil {
		uc.logger.Warn("Registration rejected - username taken",
			zap.String("username", username))
		return nil, domain.NewAppError(domain.ErrCodeUsernameTaken, "Username is already taken", 409, nil)
	}

	passwordHash, err := uc.hashPassword(password)
	if err != nil {
		uc.logger.Error("Failed to hash password",
			zap.String("username", username),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeInternalError, "Failed to process password", 500, err)
	}

	user := &domain.User{
		UID:               domain.NewUID(),
		Username:          username,
		Password:          passwordHash,
		AuthProvider:      domain.AuthProviderLocal,
		IsProfileComplete: true,
		Settings: domain.UserSettings{
			SoundEnabled:         true,
			NotificationsEnabled: true,
			DarkMode:             true,
			Language:             "en",
		},
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user",
			zap.String("username", username),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create user", 500, err)
	}

	uc.logger.Info("User registered successfully",
		zap.Int64("user_id", user.ID),
		zap.String("uid", user.UID),
		zap.String("username", username))

	return user, nil
}

// SignIn validates credentials and returns the user with a JWT token
func (uc *UserUseCase) SignIn(username, password string) (*domain.AuthResult, error) {
	uc.logger.Info("Starting user authentication",
		zap.String("username", username))

	username = strings.ToLower(strings.TrimSpace(username))

	if username == "" || password == "" {
		uc.logger.Warn("Authentication attempt with empty credentials",
			zap.String("username", username),
			zap.Bool("has_password", password != ""))
		return nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to get user from database during authentication",
			zap.String("username", username),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}

	if user == nil {
		uc.logger.Warn("Authentication failed - user not found",
			zap.String("username", username))
		return nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	if !uc.verifyPassword(password, user.Password) {
		uc.logger.Warn("Authentication failed - invalid password",
			zap.Int64("user_id", user.ID),
			zap.String("username", username))
		return nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User authentication successful",
		zap.Int64("user_id", user.ID),
		zap.String("username", username))

	return &domain.AuthResult{User: user, Token: token}, nil
}

// issueToken generates a JWT token for a user
func (uc *UserUseCase) issueToken(user *domain.User) (string, error) {
	token, err := uc.jwtSvc.GenerateToken(strconv.FormatInt(user.ID, 10), user.Username)
	if err != nil {
		uc.logger.Error("Failed to generate JWT token",
			zap.Int64("user_id", user.ID),
			zap.String("username", user.Username),
			zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", 500, err)
	}
	return token, nil
}

// validateUsername checks username format constraints
func (uc *UserUseCase) validateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		uc.logger.Warn("Invalid username length",
			zap.String("username", username),
			zap.Int("length", len(username)))
		return domain.NewAppError(domain.ErrCodeInvalidRange, "Username must be 3-20 characters", 400, nil)
	}
	if !usernamePattern.MatchString(username) {
		uc.logger.Warn("Invalid username format",
			zap.String("username", username))
		return domain.NewAppError(domain.ErrCodeInvalidFormat, "Username may only contain letters, numbers and underscores", 400, nil)
	}
	return nil
}

// hashPassword hashes a password with bcrypt
func (uc *UserUseCase) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword checks if the provided password matches the stored hash
func (uc *UserUseCase) verifyPassword(password, hashedPassword string) bool {
	if password == "" || hashedPassword == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
