package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/adapter"
	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/crypto"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/store"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
	"github.com/MKhiriev/resume-shortlister/internal/validators"
	"github.com/MKhiriev/resume-shortlister/models"
)

// identityService is the concrete implementation of [IdentityService].
//
// Signups are staged in pendingStorage with an HMAC digest of the OTP and only
// become users once the OTP is confirmed. Passwords are hashed by vault.
type identityService struct {
	userRepository store.UserRepository
	pendingStorage store.PendingSignupStorage
	mailer         adapter.Mailer
	vault          crypto.CredentialVault
	tokens         TokenAuthority
	ids            *utils.UUIDGenerator

	emailPolicy    validators.EmailPolicy
	passwordPolicy validators.PasswordPolicy

	otpLength  int
	otpTTL     time.Duration
	otpHashKey string

	passwordReuseCheck     bool
	passwordReuseScanLimit int

	now    func() time.Time
	logger *logger.Logger
}

// NewIdentityService wires the signup and login flow from its collaborators
// and the App section of the configuration.
func NewIdentityService(
	users store.UserRepository,
	pending store.PendingSignupStorage,
	mailer adapter.Mailer,
	vault crypto.CredentialVault,
	tokens TokenAuthority,
	cfg config.App,
	logger *logger.Logger,
) IdentityService {
	return &identityService{
		userRepository:         users,
		pendingStorage:         pending,
		mailer:                 mailer,
		vault:                  vault,
		tokens:                 tokens,
		ids:                    utils.NewUUIDGenerator(),
		emailPolicy:            validators.NewEmailPolicy(cfg.AllowedEmailDomains),
		passwordPolicy:         validators.NewPasswordPolicy(),
		otpLength:              cfg.OTPLength,
		otpTTL:                 cfg.OTPTTL,
		otpHashKey:             cfg.OTPHashKey,
		passwordReuseCheck:     cfg.PasswordReuseCheck,
		passwordReuseScanLimit: cfg.PasswordReuseScanLimit,
		now:                    time.Now,
		logger:                 logger,
	}
}

// SignupInit checks the signup against the email and password policies and
// existing accounts, then mails an OTP and stages the signup. Nothing is
// staged when the email cannot be sent.
func (s *identityService) SignupInit(ctx context.Context, req models.SignupInitRequest) error {
	log := logger.FromContext(ctx)

	email := validators.NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	if name == "" {
		return invalid(fmt.Errorf("%w: name is required", validators.ErrInvalidInput))
	}
	if err := s.emailPolicy.Check(email); err != nil {
		return invalid(err)
	}
	if err := s.passwordPolicy.Check(req.Password); err != nil {
		return invalid(err)
	}

	exists, err := s.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrUserAlreadyExists
	}

	if s.passwordReuseCheck {
		if err = s.checkPasswordReuse(ctx, req.Password); err != nil {
			return err
		}
	}

	passwordHash, err := s.vault.Hash(req.Password)
	if err != nil {
		return invalid(err)
	}

	otp, err := utils.GenerateNumericOTP(s.otpLength)
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	if err = s.mailer.SendOTP(ctx, email, otp); err != nil {
		log.Err(err).Str("email", email).Msg("otp email was not sent")
		return fmt.Errorf("send otp: %w", err)
	}

	signup := models.PendingSignup{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		OTPHash:      utils.HashString(otp, s.otpHashKey),
		CreatedAt:    s.now().UTC(),
	}
	if err = s.pendingStorage.Save(ctx, signup, s.otpTTL); err != nil {
		return fmt.Errorf("stage signup: %w", err)
	}

	log.Info().Str("email", email).Msg("signup staged")
	return nil
}

// checkPasswordReuse compares password with the hashes of the most recent
// users, bounded by passwordReuseScanLimit.
func (s *identityService) checkPasswordReuse(ctx context.Context, password string) error {
	hashes, err := s.userRepository.ListPasswordHashes(ctx, s.passwordReuseScanLimit)
	if err != nil {
		return fmt.Errorf("list password hashes: %w", err)
	}

	for _, hash := range hashes {
		if s.vault.Verify(hash, password) {
			return ErrPasswordInUse
		}
	}

	return nil
}

// SignupVerify creates the user staged for the email when the OTP matches.
// A wrong OTP leaves the staged signup in place.
func (s *identityService) SignupVerify(ctx context.Context, req models.SignupVerifyRequest) error {
	log := logger.FromContext(ctx)

	email := validators.NormalizeEmail(req.Email)
	otp := strings.TrimSpace(req.OTP)
	if email == "" || otp == "" {
		return ErrWrongOTP
	}

	signup, err := s.pendingStorage.Get(ctx, email)
	if errors.Is(err, store.ErrPendingSignupNotFound) {
		return ErrWrongOTP
	}
	if err != nil {
		return fmt.Errorf("load pending signup: %w", err)
	}

	if !utils.EqualHash(otp, s.otpHashKey, signup.OTPHash) {
		log.Info().Str("email", email).Msg("otp mismatch")
		return ErrWrongOTP
	}

	user := models.User{
		UserID:       s.ids.Generate(),
		Name:         signup.Name,
		Email:        signup.Email,
		PasswordHash: signup.PasswordHash,
	}
	if _, err = s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	// the user exists from here on; a stale pending record is harmless
	if err = s.pendingStorage.Delete(ctx, email); err != nil {
		log.Err(err).Str("email", email).Msg("pending signup was not deleted")
	}

	log.Info().Str("user_id", user.UserID).Msg("signup verified")
	return nil
}

// Login returns a session token for valid credentials. An unknown email and a
// wrong password produce the same error.
func (s *identityService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	email := validators.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.LoginResponse{}, ErrWrongCredentials
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.LoginResponse{}, ErrWrongCredentials
	}
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("find user: %w", err)
	}

	if !s.vault.Verify(user.PasswordHash, req.Password) {
		return models.LoginResponse{}, ErrWrongCredentials
	}

	token, err := s.tokens.Issue(ctx, user.UserID)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		AccessToken: token.SignedString,
		Name:        user.Name,
		UserID:      user.UserID,
	}, nil
}

func (s *identityService) CurrentUser(ctx context.Context, userID string) (models.Profile, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Profile{}, ErrUserNotFound
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("find user: %w", err)
	}

	return models.ProfileFromUser(user), nil
}
