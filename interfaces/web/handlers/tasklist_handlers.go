package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tasklists/application"
	"tasklists/domain/tasklist"
	"tasklists/interfaces/web/presenters"
	"tasklists/logging"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// nameRequest is the body of create and rename requests.
type nameRequest struct {
	Name string `json:"name"`
}

// TaskListHandlers handles task list HTTP endpoints. Thin orchestration:
// identity comes from the request context, business logic lives in the
// service, response shaping in the presenter.
type TaskListHandlers struct {
	service   *application.TaskListService
	presenter *presenters.TaskListPresenter
	logger    *logging.Logger
}

// NewTaskListHandlers creates a new task list handlers instance.
func NewTaskListHandlers(
	service *application.TaskListService,
	presenter *presenters.TaskListPresenter,
) *TaskListHandlers {
	return &TaskListHandlers{
		service:   service,
		presenter: presenter,
		logger:    logging.Default().WithComponent("tasklist_handler"),
	}
}

// Routes mounts all task list endpoints behind the current-user middleware.
func (h *TaskListHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(CurrentUser)

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/shares/{targetUserId}", h.Share)
	r.Get("/{id}/shares", h.GetShares)
	r.Delete("/{id}/shares/{targetUserId}", h.RemoveShare)

	return r
}

// Create makes a new task list owned by the caller.
func (h *TaskListHandlers) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body."})
		return
	}

	data, err := h.service.Create(r.Context(), req.Name, userID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, h.presenter.ToTaskListView(data))
}

// Update renames a task list.
func (h *TaskListHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body."})
		return
	}

	if err := h.service.Update(r.Context(), listID, req.Name, userID); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a task list owned by the caller.
func (h *TaskListHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), listID, userID); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Get returns a task list visible to the caller.
func (h *TaskListHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	data, err := h.service.Get(r.Context(), listID, userID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, h.presenter.ToTaskListView(data))
}

// List returns paginated summaries of lists visible to the caller.
func (h *TaskListHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	page := queryInt(r, "page", defaultPage)
	pageSize := queryInt(r, "pageSize", defaultPageSize)
	dir := tasklist.ParseSortDirection(r.URL.Query().Get("sortDirection"))

	summaries, err := h.service.List(r.Context(), userID, page, pageSize, dir)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, h.presenter.ToSummaryViews(summaries))
}

// Share grants another user access to a list owned by the caller.
func (h *TaskListHandlers) Share(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	targetUserID, ok := pathUUID(w, r, "targetUserId")
	if !ok {
		return
	}

	if err := h.service.Share(r.Context(), listID, userID, targetUserID); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetShares returns the share set of a list visible to the caller.
func (h *TaskListHandlers) GetShares(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	shares, err := h.service.GetShares(r.Context(), listID, userID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, h.presenter.ToShareViews(shares))
}

// RemoveShare revokes another user's access to a list owned by the caller.
func (h *TaskListHandlers) RemoveShare(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFrom(r.Context())

	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	targetUserID, ok := pathUUID(w, r, "targetUserId")
	if !ok {
		return
	}

	if err := h.service.RemoveShare(r.Context(), listID, userID, targetUserID); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathUUID reads a UUID path parameter. Unparseable ids respond 404 with the
// same body as a missing list, matching the merged not-found/forbidden
// contract.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondJSON(w, http.StatusNotFound, errorResponse{Message: "Not found."})
		return "", false
	}
	return id.String(), true
}

// queryInt reads an integer query parameter, falling back to a default.
func queryInt(r *http.Request, name string, def int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
