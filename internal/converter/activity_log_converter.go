package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// ActivityLogToResponse converts an ActivityLog entity to ActivityLogResponse DTO
func ActivityLogToResponse(log *entity.ActivityLog) *dto.ActivityLogResponse {
	if log == nil {
		return nil
	}

	return &dto.ActivityLogResponse{
		ID:         log.ID,
		UserID:     log.UserID,
		Username:   log.Username,
		Role:       log.Role,
		Action:     log.Action,
		TargetData: log.TargetData,
		Metadata:   log.Metadata,
		CreatedAt:  log.CreatedAt,
	}
}

func ActivityLogsToResponses(logs []entity.ActivityLog) []dto.ActivityLogResponse {
	responses := make([]dto.ActivityLogResponse, len(logs))
	for i := range logs {
		responses[i] = *ActivityLogToResponse(&logs[i])
	}
	return responses
}
