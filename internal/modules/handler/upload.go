package handler

import (
	"fmt"
	"net/http"

	"github.com/Alaebelamkaddame/content-management/internal/config"
	"github.com/Alaebelamkaddame/content-management/internal/infra/storage"
	"github.com/Alaebelamkaddame/content-management/internal/modules/serializer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UploadHandler struct {
	store *storage.LocalStore
	cfg   config.UploadConfig
	log   *zap.Logger
}

func NewUploadHandler(store *storage.LocalStore, cfg config.UploadConfig, log *zap.Logger) *UploadHandler {
	return &UploadHandler{store: store, cfg: cfg, log: log}
}

type UploadedFile struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
}

type UploadResp struct {
	URLs  []string       `json:"urls"`
	Files []UploadedFile `json:"files"`
}

// Upload godoc
//
//	@Summary	Upload asset files
//	@Tags		uploads
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		files	formData	file	true	"files"
//	@Success	201	{object}	serializer.Response{data=UploadResp}
//	@Router		/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed multipart form", err))
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("no files provided", nil))
		return
	}
	if len(files) > h.cfg.MaxFiles {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(
			fmt.Sprintf("at most %d files per request", h.cfg.MaxFiles), nil))
		return
	}

	maxSize := int64(h.cfg.MaxSizeMB) << 20
	for _, fh := range files {
		if fh.Size > maxSize {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(
				fmt.Sprintf("%s exceeds the %dMB limit", fh.Filename, h.cfg.MaxSizeMB), nil))
			return
		}
	}

	resp := UploadResp{
		URLs:  make([]string, 0, len(files)),
		Files: make([]UploadedFile, 0, len(files)),
	}
	for _, fh := range files {
		mime, err := storage.DetectMIME(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("unreadable file "+fh.Filename, err))
			return
		}

		url, err := h.store.Save(fh)
		if err != nil {
			h.log.Error("saving upload failed", zap.String("file", fh.Filename), zap.Error(err))
			c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "upload failed", err))
			return
		}

		resp.URLs = append(resp.URLs, url)
		resp.Files = append(resp.Files, UploadedFile{URL: url, Name: fh.Filename, Size: fh.Size, MIME: mime})
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: resp})
}
