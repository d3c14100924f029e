package handler

import (
	"net/http"

	"github.com/Alaebelamkaddame/content-management/internal/modules/serializer"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	svc          service.ProjectService
	assignments  service.AssignmentService
	clientTokens service.ClientTokenService
}

func NewProjectHandler(
	svc service.ProjectService,
	assignments service.AssignmentService,
	clientTokens service.ClientTokenService,
) *ProjectHandler {
	return &ProjectHandler{svc: svc, assignments: assignments, clientTokens: clientTokens}
}

// ListProjects godoc
//
//	@Summary	List projects, newest first
//	@Tags		projects
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: projects})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

type CreateProjectReq struct {
	ID          uuid.UUID   `json:"id" binding:"required"`
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Archived    bool        `json:"archived"`
	UserIDs     []uuid.UUID `json:"userIds"`
}

// CreateProject creates a project with a caller-assigned id and optionally
// its initial assignment set.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), service.CreateProjectInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Archived:    req.Archived,
		UserIDs:     req.UserIDs,
	})
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

type UpdateProjectReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Archived    *bool   `json:"archived"`
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, service.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Archived:    req.Archived,
	})
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) GetAssignments(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	assignments, err := h.assignments.ListByProject(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: assignments})
}

type ReplaceAssignmentsReq struct {
	UserIDs []uuid.UUID `json:"userIds"`
}

// ReplaceAssignments godoc
//
//	@Summary		Replace a project's assignment set
//	@Description	Atomically swaps the set of users assigned to the project. Invalid user ids abort the whole operation.
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path	string					true	"project id"
//	@Param			body	body	ReplaceAssignmentsReq	true	"new assignment set"
//	@Success		200	{object}	serializer.Response{data=[]model.AssignmentWithUser}
//	@Router			/projects/{id}/assignments [put]
func (h *ProjectHandler) ReplaceAssignments(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req ReplaceAssignmentsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	assignments, err := h.assignments.Replace(c.Request.Context(), id, req.UserIDs)
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: assignments})
}

type AddAssignmentReq struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

func (h *ProjectHandler) AddAssignment(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req AddAssignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	a, err := h.assignments.Add(c.Request.Context(), id, req.UserID)
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: a})
}

func (h *ProjectHandler) RemoveAssignment(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	removed, err := h.assignments.Remove(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("assignment not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetClientToken returns the active client token for a project, if any.
func (h *ProjectHandler) GetClientToken(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	ct, err := h.clientTokens.GetByProject(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: ct})
}

// IssueClientToken signs a fresh client-view token for the project and
// revokes any previously issued one.
func (h *ProjectHandler) IssueClientToken(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	ct, err := h.clientTokens.Issue(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: ct})
}

// DeleteClientToken revokes a client token by row id.
func (h *ProjectHandler) DeleteClientToken(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.clientTokens.Delete(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("client token not found"))
		return
	}
	c.Status(http.StatusNoContent)
}
