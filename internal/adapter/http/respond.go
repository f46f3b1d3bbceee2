package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/internal/adapter/api"
	"github.com/giovannicg/INMEDT/internal/logging"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

// LoginPath is where a backend 401 sends the browser.
const LoginPath = api.LoginPath

// finish writes a mutation result. Redirects requested by the stores win:
// a redirect to the login page means the backend rejected the token.
func finish(c *gin.Context, res usecase.Result, extra gin.H) {
	in := interactionFrom(reqCtx(c))
	body := gin.H{"success": res.Success}
	if res.Message != "" {
		body["message"] = res.Message
	}
	for k, v := range extra {
		body[k] = v
	}

	if in != nil {
		if prompt := in.Unconfirmed(); prompt != "" && !res.Success {
			body["confirm"] = prompt
			c.JSON(http.StatusConflict, body)
			return
		}
		if to := in.Redirect(); to != "" {
			body["redirect"] = to
			c.Header("Location", to)
			if to == LoginPath {
				c.JSON(http.StatusUnauthorized, body)
				return
			}
		}
	}
	if !res.Success {
		c.JSON(http.StatusUnprocessableEntity, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

// view writes a read model, or the error that prevented building it.
func view(c *gin.Context, v any, err error) {
	if err != nil {
		fail(c, err)
		return
	}
	if in := interactionFrom(reqCtx(c)); in != nil && in.Redirect() == LoginPath {
		unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, v)
}

func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	switch status := api.StatusOf(err); {
	case errors.Is(err, api.ErrUnauthorized):
		unauthorized(c)
	case errors.Is(err, usecase.ErrUnsupported):
		c.JSON(http.StatusBadRequest, gin.H{"error": "operation not supported"})
	case status == http.StatusNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.MessageOf(err, "Not found")})
	case status == http.StatusForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": usecase.MessageOf(err, "Forbidden")})
	case status >= 400 && status < 500:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": usecase.MessageOf(err, "Request rejected")})
	default:
		logging.From(c).Error("backend call failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": usecase.MessageOf(err, "The store is unavailable, try again later")})
	}
}

func unauthorized(c *gin.Context) {
	c.Header("Location", LoginPath)
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Your session has expired, please log in again", "redirect": LoginPath})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}
