package controller

import (
	"coder_edu_frontend/internal/apiclient"
	"coder_edu_frontend/internal/catalog"
	"coder_edu_frontend/internal/progression"
	"coder_edu_frontend/internal/service"
	"coder_edu_frontend/internal/session"
	"coder_edu_frontend/internal/util"
	"coder_edu_frontend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusOf 把各层错误映射成 HTTP 状态码和对外文案
func statusOf(err error) (int, string) {
	var serr *apiclient.ServerError
	var exhausted *progression.AttemptsExhaustedError
	switch {
	case errors.As(err, &serr):
		return serr.Status, serr.Detail
	case errors.As(err, &exhausted):
		return http.StatusForbidden, exhausted.Error()
	case errors.Is(err, util.ErrResourceIDInvalid),
		errors.Is(err, service.ErrRoomCodeRequired),
		errors.Is(err, progression.ErrNoSelection),
		errors.Is(err, progression.ErrUnknownOption):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, progression.ErrGenerationNotAllowed),
		errors.Is(err, progression.ErrNotStudent),
		errors.Is(err, util.ErrPermissionDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, progression.ErrBusy),
		errors.Is(err, progression.ErrStaleVisit),
		errors.Is(err, progression.ErrInvalidTransition),
		errors.Is(err, progression.ErrQuizComplete):
		return http.StatusConflict, err.Error()
	case errors.Is(err, progression.ErrEmptyQuiz):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, progression.ErrMalformedQuiz):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, service.ErrInvalidDocument):
		return http.StatusBadGateway, "Module document is unavailable"
	}
	return http.StatusInternalServerError, "Internal server error"
}

// respondError 会话失效一律回首页，其它错误按 statusOf 输出
func respondError(ctx *gin.Context, err error) {
	respondErrorWithData(ctx, err, nil)
}

func respondErrorWithData(ctx *gin.Context, err error, data interface{}) {
	if errors.Is(err, apiclient.ErrAuthRequired) {
		util.RedirectHome(ctx)
		return
	}
	code, detail := statusOf(err)
	if code >= http.StatusInternalServerError {
		logger.Log.Error("Request failed",
			zap.String("path", ctx.FullPath()),
			zap.Error(err),
		)
	}
	ctx.AbortWithStatusJSON(code, util.Response{Code: code, Detail: detail, Data: data})
}

func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return 0, false
	}
	return id, true
}

func bindFilter(ctx *gin.Context) (catalog.Filter, bool) {
	f, err := catalog.ParseFilter(ctx.Request.URL.Query())
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return catalog.Filter{}, false
	}
	return f, true
}
