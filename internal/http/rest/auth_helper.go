package rest

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/hemadri138/veritas-project/internal/repository"
	"github.com/hemadri138/veritas-project/util"
	"github.com/hemadri138/veritas-project/util/values"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenType = "access"

var (
	errInvalidCredentials = errors.New("invalid credentials")
	errTokenExpired       = errors.New("token expired")
	errTokenInvalid       = errors.New("invalid token")
)

type TokenClaims struct {
	Username string `json:"username"`
	Type     string `json:"typ"`
	jwt.StandardClaims
}

func (api *API) createToken(user model.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(api.Config.JwtExpires)

	claims := TokenClaims{
		Username: user.Username,
		Type:     accessTokenType,
		StandardClaims: jwt.StandardClaims{
			Id:        util.GenerateUUID().String(),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) verifyToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(api.Config.JwtSecret), nil
	})

	if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors == jwt.ValidationErrorExpired {
		return nil, errTokenExpired
	}
	if err != nil || !token.Valid {
		return nil, errors.Wrap(errTokenInvalid, fmt.Sprint(err))
	}

	if claims.Type != accessTokenType {
		return nil, errors.Wrap(errTokenInvalid, "unexpected token type")
	}
	if claims.Subject == "" || claims.Username == "" {
		return nil, errors.Wrap(errTokenInvalid, "missing identity claims")
	}

	return claims, nil
}

// Authenticate validates a bearer token and returns the identity it carries.
func (api *API) Authenticate(tokenString string) (model.Identity, string, string, error) {
	if strings.TrimSpace(tokenString) == "" {
		return model.Identity{}, values.NotAuthorised, "access denied, no token provided", errTokenInvalid
	}

	claims, err := api.verifyToken(tokenString)
	if err != nil {
		if errors.Is(err, errTokenExpired) {
			return model.Identity{}, values.TokenExpired, "token expired", err
		}
		return model.Identity{}, values.NotAuthorised, "invalid token", err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return model.Identity{}, values.NotAuthorised, "invalid token", errors.Wrap(errTokenInvalid, "malformed subject")
	}

	return model.Identity{UserID: userID, Username: claims.Username}, values.Success, "authenticated", nil
}

func (api *API) CreateNewUser(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, string, string, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := util.ValidateStruct(req); err != nil {
		return model.AuthResponse{}, values.BadRequestBody, util.ValidationMessage(err), err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), api.Config.BcryptCost)
	if err != nil {
		return model.AuthResponse{}, values.Error, "Error hashing password", err
	}

	user, err := api.Users.Register(ctx, model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return model.AuthResponse{}, values.Conflict, "Username or email already exists", err
		}
		return model.AuthResponse{}, values.Error, "Error creating new user", err
	}

	token, _, err := api.createToken(user)
	if err != nil {
		return model.AuthResponse{}, values.Error, fmt.Sprintf("%s [CrTk]", values.SystemErr), err
	}

	return model.AuthResponse{User: user, Token: token}, values.Created, "User registered successfully", nil
}

func (api *API) LoginUser(ctx context.Context, req model.LoginRequest) (model.AuthResponse, string, string, error) {
	req.Username = strings.TrimSpace(req.Username)

	if err := util.ValidateStruct(req); err != nil {
		return model.AuthResponse{}, values.BadRequestBody, util.ValidationMessage(err), err
	}

	user, err := api.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, values.NotAuthorised, "Invalid credentials", errInvalidCredentials
		}
		return model.AuthResponse{}, values.Error, "Error finding user", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, values.NotAuthorised, "Invalid credentials", errInvalidCredentials
	}

	token, _, err := api.createToken(user)
	if err != nil {
		return model.AuthResponse{}, values.Error, fmt.Sprintf("%s [CrTk]", values.SystemErr), err
	}

	return model.AuthResponse{User: user, Token: token}, values.Success, "Login successful", nil
}
