package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"
	"coletaverde/pkg"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/mock_auth_usecase.go -package=mocks

const userSequence = "user"

var (
	ErrInvalidName         = newError(KindValidation, "Invalid name")
	ErrInvalidEmail        = newError(KindValidation, "Invalid email")
	ErrUserAlreadyExists   = newError(KindValidation, "User already exists")
	ErrEmailAlreadyInUse   = newError(KindValidation, "Email already in use")
	ErrInvalidPasswordSize = newError(KindValidation, "Password must be between 8 and 20 characters")
	ErrInvalidAccountType  = newError(KindValidation, "Invalid account type")
	ErrInvalidCNPJ         = newError(KindValidation, "Enterprise accounts require a valid CNPJ")
	ErrInvalidPhone        = newError(KindValidation, "Invalid phone number")
	ErrInvalidPassword     = newError(KindValidation, "Invalid password")
	ErrInvalidVerifyToken  = newError(KindValidation, "Invalid verification link")
	ErrUserNotFound        = newError(KindNotFound, "User not found")
)

var (
	namePattern  = regexp.MustCompile(`^\w+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	digitsOnly   = regexp.MustCompile(`\D`)
)

var registrableRoles = []entities.Role{entities.RoleUser, entities.RoleEmployee, entities.RoleEnterprise}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	AccountType string
	CNPJ        string
	Phone       string
}

type LoginResult struct {
	Token string
	User  entities.User
}

type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	VerifyEmail(ctx context.Context, token string) (entities.User, error)
	Authenticate(ctx context.Context, token string) (entities.User, error)
}

type AuthUseCase struct {
	users         interfaces.IUserRepository
	sequence      interfaces.ISequence
	hasher        interfaces.IPasswordHasher
	tokens        interfaces.ITokenIssuer
	mailer        interfaces.IMailer
	publicBaseURL string
	logger        logrus.FieldLogger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	sequence interfaces.ISequence,
	hasher interfaces.IPasswordHasher,
	tokens interfaces.ITokenIssuer,
	mailer interfaces.IMailer,
	publicBaseURL string,
	logger logrus.FieldLogger,
) *AuthUseCase {
	return &AuthUseCase{
		users:         users,
		sequence:      sequence,
		hasher:        hasher,
		tokens:        tokens,
		mailer:        mailer,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger.WithField("module", "auth"),
	}
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if !namePattern.MatchString(name) {
		return entities.User{}, ErrInvalidName
	}
	if !emailPattern.MatchString(email) {
		return entities.User{}, ErrInvalidEmail
	}
	if n := len(in.Password); n < 8 || n > 20 {
		return entities.User{}, ErrInvalidPasswordSize
	}
	role := entities.Role(strings.ToLower(strings.TrimSpace(in.AccountType)))
	if !role.In(registrableRoles...) {
		return entities.User{}, ErrInvalidAccountType
	}
	cnpj := digitsOnly.ReplaceAllString(in.CNPJ, "")
	if role == entities.RoleEnterprise && len(cnpj) != 14 {
		return entities.User{}, ErrInvalidCNPJ
	}
	phone := ""
	if strings.TrimSpace(in.Phone) != "" {
		normalized, err := pkg.NormalizePhoneNumber(in.Phone, pkg.DefaultPhoneRegion)
		if err != nil {
			return entities.User{}, ErrInvalidPhone
		}
		phone = normalized
	}

	existing, err := u.users.GetByName(ctx, name)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != 0 {
		return entities.User{}, ErrUserAlreadyExists
	}
	existing, err = u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != 0 {
		return entities.User{}, ErrEmailAlreadyInUse
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, err
	}
	id, err := u.sequence.Next(ctx, userSequence)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:                id,
		Name:              name,
		Email:             email,
		PasswordHash:      hash,
		Role:              role,
		CNPJ:              cnpj,
		Phone:             phone,
		Addresses:         []entities.Address{},
		VerificationToken: uuid.NewString(),
		CreatedAt:         time.Now().UTC(),
	}
	if role != entities.RoleEnterprise {
		user.CNPJ = ""
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	if created.ID == 0 {
		return entities.User{}, ErrUserAlreadyExists
	}
	u.logger.WithFields(logrus.Fields{"user_id": created.ID, "role": created.Role}).Info("user registered")

	if u.mailer != nil {
		link := u.publicBaseURL + "/auth/verify-email/" + created.VerificationToken
		if err := u.mailer.SendVerification(ctx, created.Email, created.Name, link); err != nil {
			u.logger.WithError(err).WithField("user_id", created.ID).Warn("failed to send verification email")
		}
	}
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == 0 {
		return LoginResult{}, ErrUserNotFound
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidPassword
	}
	token, err := u.tokens.Issue(user)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, User: user}, nil
}

func (u *AuthUseCase) VerifyEmail(ctx context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, ErrInvalidVerifyToken
	}
	user, err := u.users.GetByVerificationToken(ctx, token)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == 0 {
		return entities.User{}, ErrInvalidVerifyToken
	}
	user.EmailVerified = true
	user.VerificationToken = ""
	return u.users.Update(ctx, user)
}

// Authenticate resolves a bearer token to the current user record. It returns
// ErrUserNotFound when the token is valid but the account no longer exists.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.User, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return entities.User{}, err
	}
	user, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
