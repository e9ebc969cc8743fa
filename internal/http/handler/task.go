package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacksonlmp/taskflow/internal/http/dto"
	"github.com/jacksonlmp/taskflow/internal/http/middleware"
	"github.com/jacksonlmp/taskflow/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	details, err := h.taskService.List(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponses(details))
}

func (h *TaskHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	detail, err := h.taskService.Create(c.Request.Context(), user.ID, service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		AssignedTo:  req.AssignedToID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(detail))
}

func (h *TaskHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	taskID, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.taskService.Get(c.Request.Context(), taskID, user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(detail))
}

func (h *TaskHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	taskID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	detail, err := h.taskService.Update(c.Request.Context(), taskID, user.ID, service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		AssignedTo:  req.AssignedToID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(detail))
}

func (h *TaskHandler) Patch(c *gin.Context) {
	user := middleware.CurrentUser(c)

	taskID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.PatchTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	detail, err := h.taskService.Patch(c.Request.Context(), taskID, user.ID, service.PatchTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		AssignedTo:  req.AssignedToID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(detail))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	taskID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), taskID, user.ID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
