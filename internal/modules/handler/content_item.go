package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Alaebelamkaddame/content-management/internal/middleware"
	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/serializer"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContentHandler struct {
	svc service.ContentService
	log *zap.Logger
}

func NewContentHandler(s service.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{svc: s, log: log}
}

// ListContent godoc
//
//	@Summary	List content items, most recent start date first
//	@Tags		content
//	@Produce	json
//	@Security	BearerAuth
//	@Param		projectId	query	string	false	"filter by project"
//	@Success	200	{object}	serializer.Response{data=[]model.ContentItem}
//	@Router		/content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	var projectID *uuid.UUID
	if raw := c.Query("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed projectId", err))
			return
		}
		projectID = &id
	}

	items, err := h.svc.List(c.Request.Context(), projectID)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// ListContentRange lists items whose start date falls in [startDate, endDate].
func (h *ContentHandler) ListContentRange(c *gin.Context) {
	startRaw, endRaw := c.Query("startDate"), c.Query("endDate")
	if startRaw == "" || endRaw == "" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("startDate and endDate are required", nil))
		return
	}
	start, err := parseDate(startRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed startDate", err))
		return
	}
	end, err := parseDate(endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed endDate", err))
		return
	}

	var projectID *uuid.UUID
	if raw := c.Query("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed projectId", err))
			return
		}
		projectID = &id
	}

	items, err := h.svc.ListRange(c.Request.Context(), start, end, projectID)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// MyAssignments lists content items assigned to the calling user.
func (h *ContentHandler) MyAssignments(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}
	items, err := h.svc.ListByAssignee(c.Request.Context(), claims.UserID)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *ContentHandler) GetContent(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		svcErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

type CreateContentReq struct {
	ProjectID     uuid.UUID           `json:"project_id" binding:"required"`
	Title         string              `json:"title"`
	Caption       string              `json:"caption"`
	Type          model.ContentType   `json:"type" binding:"required,oneof=post reel story"`
	Platforms     []string            `json:"platforms"`
	Status        model.ContentStatus `json:"status" binding:"omitempty,oneof=idea draft ready scheduled published"`
	AssigneeID    *uuid.UUID          `json:"assignee_id"`
	StartDate     string              `json:"start_date" binding:"required"`
	EndDate       *string             `json:"end_date"`
	Assets        []string            `json:"assets"`
	NotesInternal string              `json:"notes_internal"`
	NotesClient   string              `json:"notes_client"`
}

// CreateContent godoc
//
//	@Summary	Create a content item
//	@Tags		content
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body	CreateContentReq	true	"content item"
//	@Success	201	{object}	serializer.Response{data=model.ContentItem}
//	@Router		/content [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req CreateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed start_date", err))
		return
	}

	in := service.CreateContentInput{
		ProjectID:     req.ProjectID,
		Title:         req.Title,
		Caption:       req.Caption,
		Type:          req.Type,
		Platforms:     req.Platforms,
		Status:        req.Status,
		AssigneeID:    req.AssigneeID,
		StartDate:     start,
		Assets:        req.Assets,
		NotesInternal: req.NotesInternal,
		NotesClient:   req.NotesClient,
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed end_date", err))
			return
		}
		in.EndDate = &end
	}

	item, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: item})
}

// UpdateContentReq distinguishes absent fields from explicit nulls for the
// nullable columns, preserving patch semantics: absent keeps the prior
// value, null (or empty) clears it.
type UpdateContentReq struct {
	Title         *string              `json:"title"`
	Caption       *string              `json:"caption"`
	Type          *model.ContentType   `json:"type" binding:"omitempty,oneof=post reel story"`
	Platforms     *[]string            `json:"platforms"`
	Status        *model.ContentStatus `json:"status" binding:"omitempty,oneof=idea draft ready scheduled published"`
	AssigneeID    json.RawMessage      `json:"assignee_id"`
	StartDate     *string              `json:"start_date"`
	EndDate       json.RawMessage      `json:"end_date"`
	Assets        *[]string            `json:"assets"`
	NotesInternal *string              `json:"notes_internal"`
	NotesClient   *string              `json:"notes_client"`
}

func (h *ContentHandler) UpdateContent(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	in := service.UpdateContentInput{
		Title:         req.Title,
		Caption:       req.Caption,
		Type:          req.Type,
		Platforms:     req.Platforms,
		Status:        req.Status,
		Assets:        req.Assets,
		NotesInternal: req.NotesInternal,
		NotesClient:   req.NotesClient,
	}

	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed start_date", err))
			return
		}
		in.StartDate = &start
	}

	if len(req.AssigneeID) > 0 {
		var v *uuid.UUID
		if err := json.Unmarshal(req.AssigneeID, &v); err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed assignee_id", err))
			return
		}
		if v == nil {
			in.ClearAssignee = true
		} else {
			in.AssigneeID = v
		}
	}

	if len(req.EndDate) > 0 {
		var v *string
		if err := json.Unmarshal(req.EndDate, &v); err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed end_date", err))
			return
		}
		if v == nil || *v == "" {
			in.ClearEndDate = true
		} else {
			end, err := parseDate(*v)
			if err != nil {
				c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed end_date", err))
				return
			}
			in.EndDate = &end
		}
	}

	item, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		svcErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: item})
}

func (h *ContentHandler) DeleteContent(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("content item not found"))
		return
	}
	c.Status(http.StatusNoContent)
}
