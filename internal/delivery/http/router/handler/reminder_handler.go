package handler

import (
	"log/slog"
	"net/http"
	"time"

	"medi/internal/delivery/http/response"
	"medi/internal/domain/entity"
	"medi/internal/usecase"
	"medi/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ReminderHandler holds dependencies for reminder handlers
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// RecurrenceRequest represents a recurrence policy in request bodies.
// An omitted type defaults to daily.
type RecurrenceRequest struct {
	Type string `json:"type" validate:"omitempty,oneof=daily custom_days"`
	Days []int  `json:"days" validate:"omitempty,dive,min=0,max=6"`
}

func (r *RecurrenceRequest) toRecurrence() entity.Recurrence {
	if r == nil || r.Type == "" {
		return entity.DailyRecurrence()
	}

	recurrence := entity.Recurrence{Type: entity.RecurrenceType(r.Type)}
	for _, day := range r.Days {
		recurrence.Days = append(recurrence.Days, time.Weekday(day))
	}

	return recurrence
}

// AddMedicationRequest represents the request body for a medication reminder
type AddMedicationRequest struct {
	Name       string             `json:"name" validate:"required"`
	Dosage     string             `json:"dosage" validate:"required"`
	TimeOfDay  string             `json:"time_of_day" validate:"required"`
	Recurrence *RecurrenceRequest `json:"recurrence"`
}

// AddHydrationRequest represents the request body for a hydration reminder
type AddHydrationRequest struct {
	Amount     string             `json:"amount" validate:"required"`
	TimeOfDay  string             `json:"time_of_day" validate:"required"`
	Recurrence *RecurrenceRequest `json:"recurrence"`
}

// AddAppointmentRequest represents the request body for an appointment
type AddAppointmentRequest struct {
	Doctor         string    `json:"doctor" validate:"required"`
	Specialization string    `json:"specialization"`
	Location       string    `json:"location" validate:"required"`
	DateTime       time.Time `json:"date_time" validate:"required"`
}

// AddMedication handles POST /reminders/medications
func (h *ReminderHandler) AddMedication(c echo.Context) error {
	var req AddMedicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medication input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.reminderUC.AddMedication(c.Request().Context(), &usecase.AddMedicationInput{
		Name:       req.Name,
		Dosage:     req.Dosage,
		TimeOfDay:  req.TimeOfDay,
		Recurrence: req.Recurrence.toRecurrence(),
	})
	if err != nil {
		return reminderInputError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Medication reminder created")
}

// AddHydration handles POST /reminders/hydration
func (h *ReminderHandler) AddHydration(c echo.Context) error {
	var req AddHydrationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hydration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.reminderUC.AddHydration(c.Request().Context(), &usecase.AddHydrationInput{
		Amount:     req.Amount,
		TimeOfDay:  req.TimeOfDay,
		Recurrence: req.Recurrence.toRecurrence(),
	})
	if err != nil {
		return reminderInputError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Hydration reminder created")
}

// AddAppointment handles POST /reminders/appointments
func (h *ReminderHandler) AddAppointment(c echo.Context) error {
	var req AddAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	appointment, err := h.reminderUC.AddAppointment(c.Request().Context(), &usecase.AddAppointmentInput{
		Doctor:         req.Doctor,
		Specialization: req.Specialization,
		Location:       req.Location,
		DateTime:       req.DateTime,
	})
	if err != nil {
		return reminderInputError(c, err)
	}

	return response.Success(c, http.StatusCreated, appointment, "Appointment created")
}

// List handles GET /reminders
func (h *ReminderHandler) List(c echo.Context) error {
	lists, err := h.reminderUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, lists, "")
}

// ToggleCompleted handles POST /reminders/:id/toggle
func (h *ReminderHandler) ToggleCompleted(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid reminder ID")
	}

	entry, err := h.reminderUC.ToggleCompleted(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, impl.ErrReminderNotFound) {
			return response.NotFound(c, "REMINDER_NOT_FOUND", "Reminder not found")
		}

		return err
	}

	return response.Success(c, http.StatusOK, entry, "Reminder updated")
}

// DeleteEntry handles DELETE /reminders/:id
func (h *ReminderHandler) DeleteEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid reminder ID")
	}

	if err := h.reminderUC.DeleteEntry(c.Request().Context(), id); err != nil {
		if errors.Is(err, impl.ErrReminderNotFound) {
			return response.NotFound(c, "REMINDER_NOT_FOUND", "Reminder not found")
		}

		return err
	}

	return response.Success(c, http.StatusOK, nil, "Reminder deleted")
}

// DeleteAppointment handles DELETE /reminders/appointments/:id
func (h *ReminderHandler) DeleteAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid appointment ID")
	}

	if err := h.reminderUC.DeleteAppointment(c.Request().Context(), id); err != nil {
		if errors.Is(err, impl.ErrAppointmentNotFound) {
			return response.NotFound(c, "APPOINTMENT_NOT_FOUND", "Appointment not found")
		}

		return err
	}

	return response.Success(c, http.StatusOK, nil, "Appointment deleted")
}

// reminderInputError maps usecase validation failures to 400 responses.
func reminderInputError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrNameRequired),
		errors.Is(err, impl.ErrDosageRequired),
		errors.Is(err, impl.ErrAmountRequired),
		errors.Is(err, impl.ErrInvalidTimeOfDay),
		errors.Is(err, impl.ErrEmptyCustomDays):
		return response.BadRequest(c, "INVALID_REMINDER_INPUT", err.Error())
	}

	return err
}
