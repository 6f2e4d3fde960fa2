package handler

import (
	"net/http"
	"strconv"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
)

type ActivityLogHandler struct {
	activityLogUsecase usecase.ActivityLogUsecase
}

func NewActivityLogHandler(activityLogUsecase usecase.ActivityLogUsecase) *ActivityLogHandler {
	return &ActivityLogHandler{
		activityLogUsecase: activityLogUsecase,
	}
}

func (h *ActivityLogHandler) GetActivityLog(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	activityLogID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid activity log ID", nil)
		return
	}

	activityLog, err := h.activityLogUsecase.GetActivityLog(r.Context(), caller, activityLogID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Activity log retrieved successfully", activityLog)
}

// GetActivityLogs supports ?action=, ?user_id=, ?page= and ?limit=.
func (h *ActivityLogHandler) GetActivityLogs(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	query := &dto.ActivityLogQuery{
		Action: q.Get("action"),
		Page:   page,
		Limit:  limit,
	}
	if raw := q.Get("user_id"); raw != "" {
		userID, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
			return
		}
		query.UserID = &userID
	}

	logs, err := h.activityLogUsecase.GetActivityLogs(r.Context(), caller, query)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Activity logs retrieved successfully", logs.Logs, &response.Meta{
		Page:       logs.Page,
		Limit:      logs.Limit,
		Total:      logs.Total,
		TotalPages: int((logs.Total + int64(logs.Limit) - 1) / int64(logs.Limit)),
	})
}
