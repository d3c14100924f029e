package handler

import (
	"net/http"

	"github.com/Alaebelamkaddame/content-management/internal/middleware"
	"github.com/Alaebelamkaddame/content-management/internal/modules/serializer"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler serves the read-mostly client view. Every route is scoped
// to the single project embedded in the caller's client token.
type ClientHandler struct {
	projects service.ProjectService
	content  service.ContentService
}

func NewClientHandler(projects service.ProjectService, content service.ContentService) *ClientHandler {
	return &ClientHandler{projects: projects, content: content}
}

func (h *ClientHandler) projectID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.ClientProjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return uuid.Nil, false
	}
	return id, true
}

// GetProject godoc
//
//	@Summary	Project details for the client view
//	@Tags		client
//	@Produce	json
//	@Security	ClientToken
//	@Success	200	{object}	serializer.Response{data=model.Project}
//	@Router		/client/project [get]
func (h *ClientHandler) GetProject(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// ListContent lists the token's project's content, most recent first.
func (h *ClientHandler) ListContent(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}
	items, err := h.content.List(c.Request.Context(), &id)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type UpdateClientNotesReq struct {
	NotesClient string `json:"notes_client"`
}

// UpdateNotes lets the client leave feedback on a content item. Items
// outside the token's project are reported as not found rather than
// forbidden so the route leaks nothing about other projects.
func (h *ClientHandler) UpdateNotes(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateClientNotesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	item, err := h.content.UpdateClientNotes(c.Request.Context(), projectID, itemID, req.NotesClient)
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: item})
}
