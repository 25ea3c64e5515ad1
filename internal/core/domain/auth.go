package domain

type AuthMode string

const (
	ModeLogin             AuthMode = "LOGIN"
	ModeRegister          AuthMode = "REGISTER"
	ModeResetPassword     AuthMode = "RESET_PASSWORD"
	ModeEmailVerification AuthMode = "EMAIL_VERIFICATION"
)

type AuthField string

const (
	FieldUsername         AuthField = "username"
	FieldEmail            AuthField = "email"
	FieldPassword         AuthField = "password"
	FieldVerificationCode AuthField = "verificationCode"
)

type (
	AuthForm struct {
		Username         string
		Email            string
		Password         string
		VerificationCode string
	}

	// AuthFormMeta describes how the form renders in a given mode.
	AuthFormMeta struct {
		Title       string
		ButtonTitle string
		Fields      []AuthField
	}

	AuthResult struct {
		Message    string
		RedirectTo string
		Session    Session
	}

	// Session is the transient identity produced by a successful login.
	Session struct {
		UserID  string
		IDToken string
		Email   string
	}

	// Credential is what the external identity provider hands back.
	Credential struct {
		UID     string
		IDToken string
		Email   string
	}

	NewUser struct {
		FullName string
		Email    string
	}

	CreatedUser struct {
		UserID  string
		Message string
	}
)
