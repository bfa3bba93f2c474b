// Package auth implements account registration, login and the
// process-wide session store for the Holidaze API.
package auth

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/holidaze/client-go/internal/api"
	"github.com/holidaze/client-go/internal/model"
	"github.com/holidaze/client-go/internal/schema"
)

// emailDomain is the institutional domain required for registration.
const emailDomain = "@stud.noroff.no"

const (
	registerPath = "/auth/register"
	// loginPath requests the extended profile so venueManager and the
	// avatar are included in the response.
	loginPath = "/auth/login?_holidaze=true"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

// Credentials is the payload for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service implements the auth operations against the API gateway.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

// NewService creates an auth service.
func NewService(client *api.Client, log zerolog.Logger) *Service {
	return &Service{client: client, log: log}
}

// Register creates an account and returns the created profile. The API
// does not return a token for this call; use Login or RegisterThenLogin
// to obtain a session.
func (s *Service) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	if err := validateRegisterInput(in); err != nil {
		return model.User{}, err
	}

	raw, err := s.client.Post(ctx, registerPath, in, "")
	if err != nil {
		return model.User{}, err
	}

	data, _, err := schema.Envelope(raw)
	if err != nil {
		return model.User{}, err
	}
	return schema.Profile(data)
}

// Login authenticates and returns a session. A response without a
// non-empty token is rejected by the validator, never returned as a
// success.
func (s *Service) Login(ctx context.Context, creds Credentials) (model.Session, error) {
	if err := validateCredentials(creds); err != nil {
		return model.Session{}, err
	}

	raw, err := s.client.Post(ctx, loginPath, creds, "")
	if err != nil {
		return model.Session{}, err
	}

	data, _, err := schema.Envelope(raw)
	if err != nil {
		return model.Session{}, err
	}
	return schema.Session(data)
}

// RegisterThenLogin registers and immediately logs in with the same
// credentials. If registration succeeds but the login fails, the login
// error is surfaced and no session is produced; the created account is
// neither retried nor rolled back.
func (s *Service) RegisterThenLogin(ctx context.Context, in RegisterInput) (model.Session, error) {
	if _, err := s.Register(ctx, in); err != nil {
		return model.Session{}, err
	}

	sess, err := s.Login(ctx, Credentials{Email: in.Email, Password: in.Password})
	if err != nil {
		s.log.Warn().Str("email", in.Email).Err(err).
			Msg("account created but login failed")
		return model.Session{}, err
	}
	return sess, nil
}

func validateRegisterInput(in RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &schema.ValidationError{Path: "name", Expected: "non-empty string"}
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if !strings.HasSuffix(in.Email, emailDomain) {
		return &schema.ValidationError{Path: "email", Expected: "address ending in " + emailDomain}
	}
	if len(in.Password) < 8 {
		return &schema.ValidationError{Path: "password", Expected: "at least 8 characters"}
	}
	return nil
}

func validateCredentials(creds Credentials) error {
	if err := validateEmail(creds.Email); err != nil {
		return err
	}
	if creds.Password == "" {
		return &schema.ValidationError{Path: "password", Expected: "non-empty string"}
	}
	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return &schema.ValidationError{Path: "email", Expected: "valid email address"}
	}
	return nil
}
