package queue

import (
	"encoding/json"

	"github.com/blogicum-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCommentNotification 评论通知任务
	TaskCommentNotification = constants.TaskCommentNotification
)

// CommentNotificationPayload 评论通知任务载荷
type CommentNotificationPayload struct {
	CommentID uint `json:"comment_id"`
}

// NewCommentNotificationTask 创建评论通知任务
func NewCommentNotificationTask(payload CommentNotificationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCommentNotification, body), nil
}
