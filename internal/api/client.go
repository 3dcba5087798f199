package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TokenSource yields the current bearer token, empty when unauthenticated.
// The client never pre-validates the token before sending; an empty one is
// forwarded and left for the server to reject.
type TokenSource interface {
	Token() string
}

type Config struct {
	BaseURL string
	Timeout time.Duration // zero leaves requests unbounded
}

// Client talks to the storefront backend. All methods follow the same
// shape: build the request, attach auth and a request id, normalize the
// outcome into the error kinds in errors.go.
type Client struct {
	base   string
	g      *dataflow.Gout
	tokens TokenSource
	log    *zap.Logger
}

func NewClient(cfg Config, tokens TokenSource, log *zap.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		g:      gout.New(&http.Client{Timeout: cfg.Timeout}),
		tokens: tokens,
		log:    log,
	}
}

// Upload is an image attachment for the create-then-upload flow. The
// backend expects a single multipart field named "image".
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type request struct {
	method   string
	path     string
	query    gout.H
	json     interface{} // JSON body, nil for none
	body     []byte      // raw body (multipart), used when json is nil
	bodyType string      // content type for the raw body
	noAuth   bool        // register/login carry no Authorization header
	fallback string      // error message when the server body is empty
}

func (c *Client) flow(method, url string) *dataflow.DataFlow {
	switch method {
	case http.MethodPost:
		return c.g.POST(url)
	case http.MethodPut:
		return c.g.PUT(url)
	case http.MethodDelete:
		return c.g.DELETE(url)
	default:
		return c.g.GET(url)
	}
}

// do performs the request and returns the status code and raw body. A
// non-2xx status comes back as a *StatusError alongside the raw body.
func (c *Client) do(ctx context.Context, req request) (int, []byte, error) {
	df := c.flow(req.method, c.base+req.path).WithContext(ctx)

	headers := gout.H{"X-Request-Id": uuid.NewString()}
	if !req.noAuth {
		token := c.tokens.Token()
		if token == "" {
			c.log.Warn("no auth token available", zap.String("path", req.path))
		}
		headers["Authorization"] = "Bearer " + token
	}
	if req.bodyType != "" {
		headers["Content-Type"] = req.bodyType
	}
	df = df.SetHeader(headers)
	if req.query != nil {
		df = df.SetQuery(req.query)
	}
	if req.json != nil {
		df = df.SetJSON(req.json)
	} else if req.body != nil {
		df = df.SetBody(req.body)
	}

	var (
		code int
		raw  []byte
	)
	if err := df.Code(&code).BindBody(&raw).Do(); err != nil {
		c.log.Error("request failed",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Error(err))
		return 0, nil, &ConnectionError{Err: err}
	}

	c.log.Debug("response received",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Int("status", code),
		zap.Int("bytes", len(raw)))

	if code < 200 || code >= 300 {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = req.fallback
		}
		return code, raw, &StatusError{StatusCode: code, Message: msg}
	}
	return code, raw, nil
}

// doJSON performs the request and decodes the 2xx body into out. Passing a
// nil out discards the body (endpoints consumed as ok/error only).
func (c *Client) doJSON(ctx context.Context, req request, out interface{}) error {
	code, raw, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	return c.decode(code, raw, out)
}

func (c *Client) decode(code int, raw []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Error("failed to parse response as JSON",
			zap.Int("status", code),
			zap.ByteString("raw", raw[:min(len(raw), 500)]))
		return &DecodeError{StatusCode: code, Body: truncate(raw, 100)}
	}
	return nil
}

// upload ships an image as multipart/form-data. The body is assembled by
// hand so the part keeps the caller's filename and content type.
func (c *Client) upload(ctx context.Context, path string, up Upload, out interface{}, fallback string) error {
	if up.FileName == "" {
		up.FileName = "image.jpg"
	}
	if up.ContentType == "" {
		up.ContentType = "image/jpeg"
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, up.FileName))
	h.Set("Content-Type", up.ContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return errors.Wrap(err, "build multipart body")
	}
	if _, err := part.Write(up.Data); err != nil {
		return errors.Wrap(err, "build multipart body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "build multipart body")
	}

	return c.doJSON(ctx, request{
		method:   http.MethodPost,
		path:     path,
		body:     buf.Bytes(),
		bodyType: w.FormDataContentType(),
		fallback: fallback,
	}, out)
}
