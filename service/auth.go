package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shoestore_be/helper/googleauth"
	"shoestore_be/helper/watoken"
	"shoestore_be/model"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgAccessDenied       = "Access denied"
	minPasswordLength     = 8
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
}

type IDTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (googleauth.Identity, error)
}

type AuthService struct {
	users      UserStore
	google     IDTokenVerifier
	privateKey string
	tokenHours int
	now        func() time.Time
}

// NewAuthService issues sessions signed with privateKey. google may be nil
// when Google sign-in is not configured.
func NewAuthService(users UserStore, google IDTokenVerifier, privateKey string, tokenHours int) *AuthService {
	return &AuthService{
		users:      users,
		google:     google,
		privateKey: privateKey,
		tokenHours: tokenHours,
		now:        time.Now,
	}
}

func (s *AuthService) SignIn(ctx context.Context, req model.SignInRequest) model.Result[*model.Session] {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return model.Invalid[*model.Session]("Email and password are required", nil)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Session](model.KindUnauthorized, msgInvalidCredentials)
	}
	if err != nil {
		log.Println("[ERROR] Failed to find user:", err)
		return model.Fail[*model.Session](model.KindInternal, "Failed to sign in")
	}
	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		log.Println("[WARN] Failed sign-in attempt for:", email)
		return model.Fail[*model.Session](model.KindUnauthorized, msgInvalidCredentials)
	}
	return s.issue(user)
}

// SignInWithGoogle accepts a Google ID token for an existing admin account.
// It never creates users.
func (s *AuthService) SignInWithGoogle(ctx context.Context, req model.GoogleSignInRequest) model.Result[*model.Session] {
	if s.google == nil {
		return model.Fail[*model.Session](model.KindUnauthorized, "Google sign-in is not enabled")
	}
	if strings.TrimSpace(req.IDToken) == "" {
		return model.Invalid[*model.Session]("ID token is required", nil)
	}

	identity, err := s.google.Verify(ctx, req.IDToken)
	if err != nil {
		log.Println("[WARN] Google token rejected:", err)
		return model.Fail[*model.Session](model.KindUnauthorized, "Invalid Google token")
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(identity.Email))
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Session](model.KindForbidden, msgAccessDenied)
	}
	if err != nil {
		log.Println("[ERROR] Failed to find user:", err)
		return model.Fail[*model.Session](model.KindInternal, "Failed to sign in")
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *model.User) model.Result[*model.Session] {
	if user.Role != model.RoleAdmin {
		return model.Fail[*model.Session](model.KindForbidden, msgAccessDenied)
	}
	if user.IsBanned(s.now()) {
		return model.Fail[*model.Session](model.KindForbidden, "Account is banned")
	}

	token, err := watoken.EncodeforHours(user.ID, user.Name, user.Role, s.privateKey, s.tokenHours)
	if err != nil {
		log.Println("[ERROR] Failed to generate token:", err)
		return model.Fail[*model.Session](model.KindInternal, "Failed to sign in")
	}
	log.Println("[INFO] Admin signed in:", user.Email)
	return model.Ok(&model.Session{Token: token, User: *user})
}

// Me reloads the signed-in user so a ban or demotion takes effect before the
// token expires.
func (s *AuthService) Me(ctx context.Context, id string) model.Result[*model.User] {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.User](model.KindUnauthorized, "User not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to find user:", err)
		return model.Fail[*model.User](model.KindInternal, "Failed to fetch user")
	}
	if user.Role != model.RoleAdmin || user.IsBanned(s.now()) {
		return model.Fail[*model.User](model.KindForbidden, msgAccessDenied)
	}
	return model.Ok(user)
}

// SeedAdmin creates an admin account, or promotes and resets the password
// of an existing account with the same email.
func (s *AuthService) SeedAdmin(ctx context.Context, name, email, password string) model.Result[*model.User] {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	var errs fieldErrors
	errs.requireName(name)
	switch {
	case email == "":
		errs.add("email", "Email is required")
	case !emailPattern.MatchString(email):
		errs.add("email", "Invalid email format")
	}
	if len(password) < minPasswordLength {
		errs.add("password", "Password must be at least 8 characters")
	}
	if !errs.empty() {
		return model.Invalid[*model.User](errs.first(), errs.fields())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] Failed to hash password:", err)
		return model.Fail[*model.User](model.KindInternal, "Failed to seed admin")
	}

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, model.ErrNotFound):
		user = &model.User{
			Name:          name,
			Email:         email,
			EmailVerified: true,
			Role:          model.RoleAdmin,
			PasswordHash:  string(hash),
		}
		err = s.users.Create(ctx, user)
	case err == nil:
		user.Name = name
		user.Role = model.RoleAdmin
		user.PasswordHash = string(hash)
		err = s.users.Save(ctx, user)
	}
	if err != nil {
		log.Println("[ERROR] Failed to seed admin:", err)
		return model.Fail[*model.User](model.KindInternal, "Failed to seed admin")
	}
	log.Println("[INFO] Admin user ready:", user.Email)
	return model.Ok(user)
}
