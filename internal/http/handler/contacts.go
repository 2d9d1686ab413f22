package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"contactbook/internal/core"
	"contactbook/internal/http/payload"

	"go.uber.org/zap"
)

type ContactHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	contacts         ContactService
}

func NewContactHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, contactService ContactService) *ContactHandler {
	return &ContactHandler{
		logs:             logger,
		requestValidator: requestValidator,
		contacts:         contactService,
	}
}

func (h *ContactHandler) HandleAddContact(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ContactRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not add contact",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddContact,
			"request_id", requestId)
		return
	}

	rec := req.ToRecord()
	id, err := h.contacts.AddContact(r.Context(), rec)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not add contact",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to add contact",
			"error", err,
			"handler", AddContact,
			"request_id", requestId)
		return
	}

	rec.ID = id
	w.Header().Set("Location", fmt.Sprintf("/api/contacts/%d", id))

	resp := map[string]core.ContactRecord{
		"contact": rec,
	}
	respond(h.logs, w, resp, http.StatusCreated, requestId)
}

func (h *ContactHandler) HandleGetContacts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	contacts, err := h.contacts.GetContacts(r.Context())
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not retrieve contacts",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get contacts",
			"error", err,
			"handler", GetContacts,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.ContactRecord{
		"contacts": contacts,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *ContactHandler) HandleGetContact(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.contactID(w, r, requestId)
	if !ok {
		return
	}

	contact, err := h.contacts.GetContact(r.Context(), id)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve contact",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrContactNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get contact",
			"error", err,
			"handler", GetContactByID,
			"request_id", requestId)
		return
	}

	resp := map[string]core.ContactRecord{
		"contact": contact,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

// HandleUpdateContact replaces an existing contact or, when the id is
// unknown, stores the payload as a new contact and points Location at it.
func (h *ContactHandler) HandleUpdateContact(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.contactID(w, r, requestId)
	if !ok {
		return
	}

	var req payload.ContactRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not update contact",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateContact,
			"request_id", requestId)
		return
	}

	storedID, err := h.contacts.UpdateContact(r.Context(), id, req.ToRecord())
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not update contact",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to update contact",
			"error", err,
			"handler", UpdateContact,
			"request_id", requestId)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/contacts/%d", storedID))

	resp := map[string]uint{
		"id": storedID,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *ContactHandler) HandleDeleteContact(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.contactID(w, r, requestId)
	if !ok {
		return
	}

	if err := h.contacts.DeleteContact(r.Context(), id); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not delete contact",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to delete contact",
			"error", err,
			"handler", DeleteContact,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Message: "Contact deleted",
	}, http.StatusOK, requestId)
}

func (h *ContactHandler) contactID(w http.ResponseWriter, r *http.Request, requestId string) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   "id path parameter must be a positive integer",
		}, http.StatusBadRequest,
			requestId)
		return 0, false
	}
	return uint(id), true
}
