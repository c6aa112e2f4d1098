package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// DepositRepository adaptador de bank-deposits.
type DepositRepository struct {
	*Resource[entity.BankDeposit]
}

var _ repository.BankDepositRepository = (*DepositRepository)(nil)

// NewDepositRepository construye el adaptador.
func NewDepositRepository(c *Client) *DepositRepository {
	return &DepositRepository{Resource: NewResource[entity.BankDeposit](c, "bank-deposits")}
}

// UploadReceipt POST multipart (campo "file") a bank-deposits/upload.
// La respuesta es un string con la URL o {"fileUrl": "..."}.
func (r *DepositRepository) UploadReceipt(ctx context.Context, scope repository.Scope, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", fmt.Errorf("backend: multipart: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("backend: copiar archivo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("backend: cerrar multipart: %w", err)
	}

	raw, err := r.c.do(ctx, call{
		method:      http.MethodPost,
		path:        OrgPath(scope.OrganizationID, r.name, "upload"),
		rawBody:     &buf,
		contentType: mw.FormDataContentType(),
		token:       scope.Token,
		timeout:     r.c.uploadTimeout,
	})
	if err != nil {
		return "", err
	}
	u := extractURL(raw, "fileUrl", "url")
	if u == "" {
		return "", fmt.Errorf("backend: upload sin URL en la respuesta")
	}
	return u, nil
}

// DownloadURL GET bank-deposits/{id}/download-url?durationSeconds=N. Respuesta string o {"url": "..."}.
// La URL se devuelve tal cual; la reparación la aplica el caso de uso.
func (r *DepositRepository) DownloadURL(ctx context.Context, scope repository.Scope, id string, ttl time.Duration) (string, error) {
	secs := int(ttl / time.Second)
	if secs <= 0 {
		secs = 60
	}
	raw, err := r.c.do(ctx, call{
		method:  http.MethodGet,
		path:    OrgPath(scope.OrganizationID, r.name, id, "download-url"),
		query:   url.Values{"durationSeconds": {strconv.Itoa(secs)}},
		token:   scope.Token,
		timeout: downloadURLTimeout,
	})
	if err != nil {
		return "", err
	}
	u := extractURL(raw, "url", "signedUrl")
	if u == "" {
		return "", fmt.Errorf("backend: download-url sin URL en la respuesta")
	}
	return u, nil
}

// extractURL acepta "https://...", texto plano o un objeto con alguna de las claves.
func extractURL(raw []byte, keys ...string) string {
	s := strings.TrimSpace(string(raw))
	switch {
	case s == "" || s == "null":
		return ""
	case strings.HasPrefix(s, `"`):
		var out string
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return ""
		}
		return strings.TrimSpace(out)
	case strings.HasPrefix(s, "{"):
		var obj map[string]any
		if err := json.Unmarshal([]byte(s), &obj); err != nil {
			return ""
		}
		for _, k := range keys {
			if v, ok := obj[k].(string); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return ""
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return s
	default:
		return ""
	}
}
