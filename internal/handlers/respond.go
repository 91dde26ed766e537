package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/dto"
	"github.com/VidTubeHQ/vidtube_backend/internal/middleware"
)

// respondOK writes the uniform success envelope.
func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.NewAPIResponse(status, message, data))
}

// respondError maps a service error to an HTTP status and writes the
// uniform error envelope. Internal detail is logged, never returned.
func respondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(message, slog.String("error", err.Error()))
	}

	c.JSON(status, dto.APIError{Status: status, Message: message})
}

// respondBadRequest writes a 400 for malformed request bodies.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.APIError{Status: http.StatusBadRequest, Message: message})
}

// requireUserID pulls the authenticated user ID from context, aborting
// with 401 when absent. Routes behind AuthMiddleware always have it.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIError{Status: http.StatusUnauthorized, Message: "Authentication required"})
		return "", false
	}
	return userID, true
}

// requireIDParam reads a path parameter that must be a UUID. A malformed
// value cannot reference any record, so it gets the same 404 a missing
// record would, before any query is attempted.
func requireIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.APIError{Status: http.StatusNotFound, Message: "Resource not found"})
		return "", false
	}
	return id, true
}

// formFileUpload reads one multipart file field into a FileUpload. The
// caller owns the returned closer.
func formFileUpload(c *gin.Context, field string) (*dto.FileUpload, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &dto.FileUpload{
		Reader:      f,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}
	return upload, func() { _ = f.Close() }, nil
}
