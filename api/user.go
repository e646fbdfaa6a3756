package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/token"
	"github.com/Lkoenig2121/ebay/internal/util"
	"github.com/Lkoenig2121/ebay/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type createUserResponse struct {
	User db.User `json:"user"`
}

func validateCreateUserRequest(req *createUserRequest) (violations []*FieldViolation) {
	if err := validator.ValidateUsername(req.Username); err != nil {
		violations = append(violations, fieldViolation("username", err))
	}

	if err := validator.ValidatePassword(req.Password); err != nil {
		violations = append(violations, fieldViolation("password", err))
	}

	if err := validator.ValidateEmail(req.Email); err != nil {
		violations = append(violations, fieldViolation("email", err))
	}

	return violations
}

func (server *Server) createUser(ctx *gin.Context) {
	req := new(createUserRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	violations := validateCreateUserRequest(req)
	if violations != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError(violations))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("failed to hash password: %w", err)))
		return
	}

	arg := db.CreateUserParams{
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Email:          req.Email,
	}

	user, err := server.dbStore.CreateUser(ctx, arg)
	if err != nil {
		if errors.Is(err, db.ErrUsernameExists) {
			err = fmt.Errorf("username %s already exists", req.Username)
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to create user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusCreated, createUserResponse{User: user})
}

type loginUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginUserResponse struct {
	User                 db.User   `json:"user"`
	AccessToken          string    `json:"token"`
	AccessTokenExpiresAt time.Time `json:"token_expires_at"`
}

func (server *Server) loginUser(ctx *gin.Context) {
	req := new(loginUserRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.dbStore.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = errors.New("invalid credentials")
			ctx.JSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to find user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	err = util.CheckPassword(req.Password, user.HashedPassword)
	if err != nil {
		err = errors.New("invalid credentials")
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(user.ID, user.Username, server.config.AccessTokenDuration)
	if err != nil {
		log.Err(err).Msg("failed to create access token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	// Browser clients authenticate with the cookie, API clients with the
	// bearer token in the response body.
	ctx.SetCookie(tokenCookieName, accessToken, int(server.config.AccessTokenDuration.Seconds()), "/", "", false, true)

	resp := loginUserResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiresAt.Time,
		User:                 user,
	}
	ctx.JSON(http.StatusOK, resp)
}

func (server *Server) logoutUser(ctx *gin.Context) {
	ctx.SetCookie(tokenCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (server *Server) getCurrentUser(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	user, err := server.dbStore.GetUserByID(ctx, authPayload.Subject)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
			return
		}

		log.Err(err).Msg("failed to get user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
