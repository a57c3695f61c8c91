package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/splitteam/expense-backend/internal/auth"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
)

type LoginController struct {
	Authenticator *auth.PasswordAuthenticator
	JWTManager    *auth.JWTManager
	Validate      *validator.Validate
}

func NewLoginController(authenticator *auth.PasswordAuthenticator, jwtManager *auth.JWTManager) *LoginController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &LoginController{
		Authenticator: authenticator,
		JWTManager:    jwtManager,
		Validate:      validate,
	}
}

type LoginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	UserId   string `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginBody
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

	user, err := c.Authenticator.Authenticate(body.Email, body.Password)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid email or password",
		}, http.StatusUnauthorized)
	}

	token, err := c.JWTManager.Generate(user)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error generating access token",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&LoginResponse{
		UserId:   user.Id.Hex(),
		FullName: user.FullName,
		Email:    user.Email,
		Token:    token,
	}, http.StatusOK)
}
