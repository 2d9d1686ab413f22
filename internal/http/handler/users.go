package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"contactbook/internal/core"
	"contactbook/internal/http/handler/middleware"
	"contactbook/internal/http/payload"

	"go.uber.org/zap"
)

type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             AuthService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, authService AuthService) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             authService,
	}
}

func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RegisterUser,
			"request_id", requestId)
		return
	}

	user, token, err := h.auth.Register(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Registration failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", RegisterUser,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"user":  user,
		"token": token,
	}
	respond(h.logs, w, resp, http.StatusCreated, requestId)
}

func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", LoginUser,
			"request_id", requestId)
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", LoginUser,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"user":  user,
		"token": token,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *UserHandler) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	users, err := h.auth.GetUsers(r.Context())
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not retrieve users",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get users",
			"error", err,
			"handler", GetUsers,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.UserRecord{
		"users": users,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   "id path parameter must be a positive integer",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	user, err := h.auth.GetUser(r.Context(), uint(id))
	if err != nil {
		resp := Response{
			Message: "Could not retrieve user",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get user",
			"error", err,
			"handler", GetUserByID,
			"request_id", requestId)
		return
	}

	resp := map[string]core.UserRecord{
		"user": user,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}
