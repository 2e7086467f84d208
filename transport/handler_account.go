package transport

import (
	"encoding/json"
	"net/http"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	utilsContext "github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/context"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/errors"
)

// RegisterCustomer handler
// @Summary Register customer
// @Description Create an unconfirmed customer account and email its confirmation code
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} Response{data=model.RegisterResponse}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Failure 502 {object} Response{data=model.RegisterResponse} "account created, email not sent"
// @Router /accounts/register [post]
func (s *RestHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.RegisterCustomer(r.Context(), &req)
	writeRegistration(w, res, err)
}

// RegisterAgent handler
// @Summary Register agent
// @Description Create an unconfirmed agent account with its agent profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body model.RegisterAgentRequest true "Register Agent Request"
// @Success 201 {object} Response{data=model.RegisterResponse}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Failure 502 {object} Response{data=model.RegisterResponse} "account created, email not sent"
// @Router /accounts/register/agent [post]
func (s *RestHandler) RegisterAgent(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.RegisterAgent(r.Context(), &req)
	writeRegistration(w, res, err)
}

func writeRegistration(w http.ResponseWriter, res *model.RegisterResponse, err error) {
	if err != nil {
		if res != nil && errors.IsType(err, constant.ErrNotificationFailed) {
			writeErrorData(w, err, res)
			return
		}
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, res)
}

// ResendConfirmation handler
// @Summary Resend confirmation code
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body model.ResendConfirmationRequest true "Resend Request"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Failure 502 {object} Response
// @Router /accounts/resend-confirmation [post]
func (s *RestHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	var req model.ResendConfirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AccountApp.ResendConfirmation(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ConfirmAccount handler
// @Summary Confirm account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body model.ConfirmAccountRequest true "Confirm Request"
// @Success 200 {object} Response{data=model.RegisterResponse}
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /accounts/confirm [post]
func (s *RestHandler) ConfirmAccount(w http.ResponseWriter, r *http.Request) {
	var req model.ConfirmAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.ConfirmAccount(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Login handler
// @Summary Obtain a bearer token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} Response{data=model.LoginResponse}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /accounts/token [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Profile handler
// @Summary Current account profile
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.ProfileResponse}
// @Failure 401 {object} Response
// @Router /accounts/profile [get]
func (s *RestHandler) Profile(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.AccountApp.Profile(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
