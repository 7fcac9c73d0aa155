package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"customer-service/internal/api/handler/dto"
	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError

	switch {
	case errors.Is(err, customer.ErrNotFound), errors.Is(err, apperrors.ErrNotFound):
		// Not-found carries no body; the status line says it all.
		w.WriteHeader(http.StatusNotFound)
		return
	case errors.Is(err, customer.ErrEmailAlreadyExists), errors.Is(err, apperrors.ErrAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

func getCustomerIDFromURL(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "customerID")
	if idStr == "" {
		return 0, fmt.Errorf("%w: customerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customerID format in URL path: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

// CreateCustomer handles POST /api/customers
// @Summary Create a new customer
// @Description Creates a new customer record with first name, last name and a unique email.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body customer.Representation true "Customer creation request (id is ignored)"
// @Success 201 {object} customer.Representation "Customer successfully created"
// @Failure 400 {object} dto.Violations "Field name mapped to its violated rules"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var rep customer.Representation
	if err := decodeJSON(r, &rep); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if violations := dto.ValidateCustomer(rep); !violations.IsEmpty() {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Int("fields", len(violations)))
		respondJSON(w, http.StatusBadRequest, violations)
		return
	}
	h.logger.DebugContext(r.Context(), "Request validation passed")

	created, err := h.service.CreateCustomer(r.Context(), rep)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrEmailAlreadyExists) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to create customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.Int64("customerID", created.ID))
	respondJSON(w, http.StatusCreated, created)
}

// ListCustomers handles GET /api/customers
// @Summary List customers
// @Description Retrieves every customer record.
// @Tags Customers
// @Produce json
// @Success 200 {array} customer.Representation "List of customers"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received list customers request")

	reps, err := h.service.ListCustomers(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list customers", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customers listed successfully", slog.Int("count", len(reps)))
	respondJSON(w, http.StatusOK, reps)
}

// GetCustomer handles GET /api/customers/{customerID}
// @Summary Retrieve customer details
// @Description Retrieves a single customer by its identifier.
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {object} customer.Representation "Customer details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID format"
// @Failure 404 "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers/{customerID} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received get customer request", slog.Int64("customerID", customerID))

	rep, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrNotFound) && !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer retrieved successfully", slog.Int64("customerID", rep.ID))
	respondJSON(w, http.StatusOK, rep)
}

// SearchCustomers handles GET /api/customers/search?keyword=K
// @Summary Search customers by first name
// @Description Case-insensitive substring match on first name. An empty keyword matches all customers.
// @Tags Customers
// @Produce json
// @Param keyword query string false "Substring to match against first names"
// @Success 200 {array} customer.Representation "Matching customers (possibly empty)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers/search [get]
func (h *CustomerHandler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	h.logger.DebugContext(r.Context(), "Received search customers request", slog.String("keyword", keyword))

	reps, err := h.service.SearchCustomers(r.Context(), keyword)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to search customers", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer search completed", slog.Int("count", len(reps)))
	respondJSON(w, http.StatusOK, reps)
}

// UpdateCustomer handles PUT /api/customers/{customerID}
// @Summary Update a customer
// @Description Replaces the customer addressed by the path identifier. Any id in the request body is ignored.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Param request body customer.Representation true "Replacement representation"
// @Success 200 {object} customer.Representation "Customer successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID or request payload"
// @Failure 404 "Customer not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use by another customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers/{customerID} [put]
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received update customer request", slog.Int64("customerID", customerID))

	var rep customer.Representation
	if err := decodeJSON(r, &rep); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	updated, err := h.service.UpdateCustomer(r.Context(), customerID, rep)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrNotFound) && !errors.Is(err, customer.ErrEmailAlreadyExists) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to update customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer updated successfully", slog.Int64("customerID", updated.ID))
	respondJSON(w, http.StatusOK, updated)
}

// DeleteCustomer handles DELETE /api/customers/{customerID}
// @Summary Delete a customer
// @Description Removes the customer addressed by the path identifier.
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 204 "Customer successfully deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 404 "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/customers/{customerID} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received delete customer request", slog.Int64("customerID", customerID))

	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to delete customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted successfully", slog.Int64("customerID", customerID))
	w.WriteHeader(http.StatusNoContent)
}
