package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	maxAuditBodyBytes = 16384
	redacted          = "***"
)

// 日记密码等字段不落日志
var sensitiveFields = []string{"password"}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if r.body.Len() < maxAuditBodyBytes {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware 记录请求与响应，敏感字段脱敏
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/api/ping" {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", redactQuery(c.Request.URL.RawQuery)),
			log.String("req_body", redactBody(reqBody)),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", w.body.String()),
		)
	}
}

func redactQuery(rawQuery string) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return rawQuery
	}
	for _, field := range sensitiveFields {
		if values.Has(field) {
			values.Set(field, redacted)
		}
	}
	decoded, err := url.QueryUnescape(values.Encode())
	if err != nil {
		return values.Encode()
	}
	return decoded
}

// redactBody 只处理 JSON 对象，其它内容原样截断输出
func redactBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		if len(body) > maxAuditBodyBytes {
			body = body[:maxAuditBodyBytes]
		}
		return string(body)
	}
	changed := false
	for _, field := range sensitiveFields {
		if _, ok := payload[field]; ok {
			payload[field] = redacted
			changed = true
		}
	}
	if !changed {
		return string(body)
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(out)
}
