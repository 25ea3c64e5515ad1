package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.AuthFlow = (*AuthService)(nil)

const (
	msgLoginSuccess = "Login successful! Redirecting..."
	msgResetSent    = "Password reset email sent. Please check your e-mail."
	msgUserCreated  = "User successfully created"
	homeRedirect    = "/"
)

var fieldsByMode = map[domain.AuthMode][]domain.AuthField{
	domain.ModeLogin: {
		domain.FieldEmail, domain.FieldPassword,
	},
	domain.ModeRegister: {
		domain.FieldUsername, domain.FieldEmail, domain.FieldPassword,
	},
	domain.ModeResetPassword: {
		domain.FieldEmail,
	},
	domain.ModeEmailVerification: {
		domain.FieldVerificationCode,
	},
}

var formMetaByMode = map[domain.AuthMode]domain.AuthFormMeta{
	domain.ModeLogin:             {Title: "Log in", ButtonTitle: "Login"},
	domain.ModeRegister:          {Title: "Register", ButtonTitle: "Register"},
	domain.ModeResetPassword:     {Title: "Reset Your Password", ButtonTitle: "Reset"},
	domain.ModeEmailVerification: {Title: "Verify Your Email", ButtonTitle: "Verify"},
}

// AuthService drives the four-mode auth form flow. Modes never transition
// automatically; the caller selects the mode on every submit.
type AuthService struct {
	identity port.IdentityProvider
	verifier port.UserVerifier
	creator  port.UserCreator
	sessions port.SessionStorage
}

func NewAuthService(
	identity port.IdentityProvider,
	verifier port.UserVerifier,
	creator port.UserCreator,
	sessions port.SessionStorage,
) AuthService {
	return AuthService{identity, verifier, creator, sessions}
}

// Fields reports which form fields are visible in the given mode.
func (s AuthService) Fields(mode domain.AuthMode) []domain.AuthField {
	return slices.Clone(fieldsByMode[mode])
}

// Form reports the form rendering metadata for the given mode.
func (s AuthService) Form(mode domain.AuthMode) domain.AuthFormMeta {
	meta := formMetaByMode[mode]
	meta.Fields = s.Fields(mode)
	return meta
}

func (s AuthService) Submit(
	ctx context.Context, mode domain.AuthMode, form domain.AuthForm,
) (domain.AuthResult, error) {
	const op = "AuthService.Submit"

	if err := ctx.Err(); err != nil {
		return domain.AuthResult{}, fmt.Errorf("%s: %w", op, err)
	}

	switch mode {
	case domain.ModeLogin:
		return s.login(ctx, form)
	case domain.ModeRegister:
		return s.register(ctx, form)
	case domain.ModeResetPassword:
		return domain.AuthResult{Message: msgResetSent}, nil
	case domain.ModeEmailVerification:
		return domain.AuthResult{}, fmt.Errorf(
			"%s: email verification: %w", op, domain.ErrNotImplemented,
		)
	default:
		return domain.AuthResult{}, fmt.Errorf(
			"%s: unknown mode %q", op, mode,
		)
	}
}

func (s AuthService) login(
	ctx context.Context, form domain.AuthForm,
) (domain.AuthResult, error) {
	const op = "AuthService.login"
	log := slog.With("op", op)

	cred, err := s.identity.SignIn(ctx, form.Email, form.Password)
	if err != nil {
		log.Warn("identity sign-in rejected", "err", err)
		return domain.AuthResult{}, fmt.Errorf("%s: %w", op, domain.ErrAuth)
	}

	sess, err := s.verifier.VerifyUser(ctx, cred.IDToken)
	if err != nil {
		log.Warn("backend verification failed", "err", err)
		return domain.AuthResult{}, fmt.Errorf("%s: %w", op, domain.ErrAuth)
	}

	if sess.Email == "" {
		sess.Email = cred.Email
	}

	if err := s.sessions.StoreSession(ctx, sess); err != nil {
		return domain.AuthResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.AuthResult{
		Message:    msgLoginSuccess,
		RedirectTo: homeRedirect,
		Session:    sess,
	}, nil
}

func (s AuthService) register(
	ctx context.Context, form domain.AuthForm,
) (domain.AuthResult, error) {
	const op = "AuthService.register"

	if form.Username == "" || form.Email == "" || form.Password == "" {
		return domain.AuthResult{}, fmt.Errorf("%s: %w", op, domain.ErrValidation)
	}

	cred, err := s.identity.SignUp(ctx, form.Email, form.Password)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("%s: %w", op, err)
	}

	u := domain.NewUser{FullName: form.Username, Email: form.Email}
	created, err := s.creator.CreateUser(ctx, u, cred.IDToken)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("%s: %w", op, err)
	}

	msg := created.Message
	if msg == "" {
		msg = msgUserCreated
	}
	return domain.AuthResult{Message: msg}, nil
}
