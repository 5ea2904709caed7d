package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nlog/notes-system/internal/api/metrics"
	"github.com/nlog/notes-system/internal/core/domain"
	"github.com/nlog/notes-system/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. All routes sit
// behind the Auth middleware; the acting identity comes from the request
// context, never from the payload.
type NoteHandler struct {
	noteService ports.NoteService
}

func NewNoteHandler(noteService ports.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

type createNoteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Create stores a new note for the authenticated user.
//
// @Summary      Create a new note
// @Description  Create a new note associated with the currently authenticated user. The note data (like title and content) is passed as a free-form JSON object.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]interface{}  true  "Note fields"
// @Success      200   {object}  createNoteResponse
// @Failure      401   {object}  map[string]string
// @Router       /notes/ [post]
func (h *NoteHandler) Create(c echo.Context) error {
	owner, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.noteService.Create(c.Request().Context(), owner, fields)
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("create", "success").Inc()
	return c.JSON(http.StatusOK, createNoteResponse{ID: id, Message: "Note created."})
}

// List returns all notes of the authenticated user.
//
// @Summary      Get all notes of the logged-in user
// @Description  Fetch all notes created by the currently authenticated user.
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /notes/ [get]
func (h *NoteHandler) List(c echo.Context) error {
	owner, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notes, err := h.noteService.List(c.Request().Context(), owner)
	if err != nil {
		return err
	}
	if notes == nil {
		notes = []domain.Note{}
	}

	metrics.NoteOperationsTotal.WithLabelValues("list", "success").Inc()
	return c.JSON(http.StatusOK, notes)
}

// Update modifies a note owned by the authenticated user.
//
// @Summary      Update an existing note
// @Description  Update a note by its ID. Only the owner of the note can modify it.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        note_id  path      string                  true  "Note ID"
// @Param        body     body      map[string]interface{}  true  "Fields to set"
// @Success      200      {object}  messageResponse
// @Failure      404      {object}  map[string]string
// @Router       /notes/{note_id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	owner, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.noteService.Update(c.Request().Context(), c.Param("note_id"), owner, fields); err != nil {
		if errors.Is(err, domain.ErrNoteNotOwned) {
			metrics.NoteOperationsTotal.WithLabelValues("update", "not_found").Inc()
			return echo.NewHTTPError(http.StatusNotFound, "Note cannot be modified by you.")
		}
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("update", "success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Note updated."})
}

// Delete removes a note owned by the authenticated user.
//
// @Summary      Delete a note
// @Description  Delete a specific note by its ID. Only the owner of the note can delete it.
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        note_id  path      string  true  "Note ID"
// @Success      200      {object}  messageResponse
// @Failure      404      {object}  map[string]string
// @Router       /notes/{note_id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	owner, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.noteService.Delete(c.Request().Context(), c.Param("note_id"), owner); err != nil {
		if errors.Is(err, domain.ErrNoteNotOwned) {
			metrics.NoteOperationsTotal.WithLabelValues("delete", "not_found").Inc()
			return echo.NewHTTPError(http.StatusNotFound, "Note cannot be deleted by you.")
		}
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("delete", "success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Note deleted."})
}
