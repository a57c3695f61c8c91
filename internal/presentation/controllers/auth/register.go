package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/splitteam/expense-backend/internal/auth"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
)

type RegisterController struct {
	Authenticator *auth.PasswordAuthenticator
	JWTManager    *auth.JWTManager
	Validate      *validator.Validate
}

func NewRegisterController(authenticator *auth.PasswordAuthenticator, jwtManager *auth.JWTManager) *RegisterController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &RegisterController{
		Authenticator: authenticator,
		JWTManager:    jwtManager,
		Validate:      validate,
	}
}

type RegisterBody struct {
	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type RegisterResponse struct {
	UserId   string `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func (c *RegisterController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RegisterBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	user, err := c.Authenticator.Register(body.FullName, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: err.Error(),
			}, http.StatusConflict)
		}
		if errors.Is(err, auth.ErrWeakPassword) {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: err.Error(),
			}, http.StatusBadRequest)
		}
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating user",
		}, http.StatusInternalServerError)
	}

	token, err := c.JWTManager.Generate(user)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error generating access token",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&RegisterResponse{
		UserId:   user.Id.Hex(),
		FullName: user.FullName,
		Email:    user.Email,
		Token:    token,
	}, http.StatusCreated)
}
