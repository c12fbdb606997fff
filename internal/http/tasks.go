package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/tasks"
)

// TasksController reports the state of queued imports.
type TasksController struct {
	client TaskStatusReader
	log    *zap.Logger
}

func NewTasksController(client TaskStatusReader, log *zap.Logger) *TasksController {
	return &TasksController{client: client, log: log}
}

// GetTaskStatus handles GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	if tc.client == nil {
		respondError(c, http.StatusServiceUnavailable, "background tasks are disabled")
		return
	}

	taskID := c.Param("id")
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, tc.log, err, "task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": tasks.StatusString(status),
	})
}
