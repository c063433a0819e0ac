package apiclient

import (
	"coder_edu_frontend/internal/config"
	"coder_edu_frontend/internal/util"
	"coder_edu_frontend/pkg/logger"
	"coder_edu_frontend/pkg/monitoring"
	"coder_edu_frontend/pkg/tracing"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

// Client 远端 LMS REST API 的唯一出口。不做重试，超时使用配置值
type Client struct {
	http *resty.Client
}

func New(cfg config.APIConfig) *Client {
	h := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", util.MimeJSON)
	if cfg.Timeout > 0 {
		h.SetTimeout(cfg.Timeout)
	}
	return &Client{http: h}
}

// Request 描述一次调用；Token 为空时不带 Authorization 头
type Request struct {
	Method string
	Path   string
	Token  string
	Query  url.Values
	Body   interface{}
	Form   map[string]string
}

func (c *Client) execute(ctx context.Context, r Request) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if r.Token != "" {
		req.SetAuthToken(r.Token)
	}
	if r.Query != nil {
		req.SetQueryParamsFromValues(r.Query)
	}
	switch {
	case r.Form != nil:
		req.SetFormData(r.Form)
	case r.Body != nil:
		req.SetHeader("Content-Type", util.MimeJSON).SetBody(r.Body)
	}

	ctx, span := tracing.StartUpstreamSpan(ctx, r.Method, r.Path, propagation.HeaderCarrier(req.Header))
	req.SetContext(ctx)

	start := time.Now()
	resp, err := req.Execute(r.Method, r.Path)
	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}
	monitoring.ObserveUpstream(r.Method, status, time.Since(start))

	if err != nil {
		tracing.EndUpstreamSpan(span, status, err)
		logger.Log.Warn("Upstream request failed",
			zap.String("method", r.Method),
			zap.String("path", r.Path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", r.Method, r.Path, err)
	}

	err = statusError(resp)
	tracing.EndUpstreamSpan(span, status, err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func statusError(resp *resty.Response) error {
	status := resp.StatusCode()
	switch {
	case status == http.StatusUnauthorized:
		return ErrAuthRequired
	case status < 200 || status > 299:
		return &ServerError{Status: status, Detail: parseDetail(status, resp.Body())}
	}
	return nil
}

// Do 发起 JSON 请求并把响应解到 out；204 或 out 为 nil 时忽略响应体
func (c *Client) Do(ctx context.Context, r Request, out interface{}) error {
	resp, err := c.execute(ctx, r)
	if err != nil {
		return err
	}

	if out == nil || resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.Method, r.Path, err)
	}
	return nil
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Download 获取二进制内容，文件名优先取 Content-Disposition，否则用 fallback
func (c *Client) Download(ctx context.Context, r Request, fallback string) (*File, error) {
	if r.Method == "" {
		r.Method = http.MethodGet
	}
	resp, err := c.execute(ctx, r)
	if err != nil {
		return nil, err
	}

	name := util.FilenameFromDisposition(resp.Header().Get("Content-Disposition"))
	if name == "" {
		name = fallback
	}
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	return &File{
		Name:        name,
		ContentType: contentType,
		Data:        resp.Body(),
	}, nil
}
