package storefront

import (
	"context"
	"errors"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"encore.app/storefront/model"
)

const roleAdmin = "admin"

// AuthData is what the auth handler attaches to an authenticated request.
type AuthData struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (d *AuthData) IsAdmin() bool {
	return d != nil && d.Role == roleAdmin
}

// supabaseClaims are the claims of a Supabase access token. The storefront
// role lives in app_metadata only; the top-level role is the Postgres role
// and is ignored.
type supabaseClaims struct {
	Email       string `json:"email"`
	AppMetadata struct {
		Role string `json:"role"`
	} `json:"app_metadata"`
	jwt.RegisteredClaims
}

//encore:authhandler
func (s *Service) AuthHandler(ctx context.Context, token string) (auth.UID, *AuthData, error) {
	data, err := verifyToken(token, s.cfg.SupabaseJWTSecret)
	if err != nil {
		rlog.Debug("rejected access token", "error", err)
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "invalid access token"}
	}
	return auth.UID(data.UserID), data, nil
}

func verifyToken(token, secret string) (*AuthData, error) {
	if secret == "" {
		return nil, errors.New("jwt secret not configured")
	}
	claims := &supabaseClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, errors.New("subject is not a user id")
	}

	return &AuthData{UserID: claims.Subject, Email: claims.Email, Role: claims.AppMetadata.Role}, nil
}

// currentCaller is an indirection over the auth context so tests can supply a caller.
var currentCaller = callerFromAuth

func callerFromAuth() *AuthData {
	data, _ := auth.Data().(*AuthData)
	return data
}

// requireActor resolves the authenticated caller.
func requireActor() (model.Actor, *AuthData, error) {
	data := currentCaller()
	if data == nil {
		return model.Actor{}, nil, &errs.Error{Code: errs.Unauthenticated, Message: "user not authenticated"}
	}
	id, err := uuid.Parse(data.UserID)
	if err != nil {
		return model.Actor{}, nil, &errs.Error{Code: errs.Unauthenticated, Message: "user not authenticated"}
	}
	return model.Actor{ID: id, Admin: data.IsAdmin()}, data, nil
}
