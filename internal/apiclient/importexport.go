package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// MaxImportSize is the upload cap enforced before the file leaves the
// machine: 10MB, matching the backend's own limit.
const MaxImportSize = 10 << 20

// ImportResult reports the per-row outcome of a bulk employee import.
type ImportResult struct {
	TotalRows    int `json:"totalRows"`
	SuccessCount int `json:"successCount"`
	ErrorCount   int `json:"errorCount"`
	Errors       []struct {
		Row   int    `json:"row"`
		Error string `json:"error"`
	} `json:"errors"`
}

// ImportEmployees uploads an Excel/CSV file as multipart form data.
func (c *Client) ImportEmployees(ctx context.Context, filePath string) (ImportResult, error) {
	var result ImportResult

	info, err := os.Stat(filePath)
	if err != nil {
		return result, err
	}
	if info.Size() > MaxImportSize {
		return result, fmt.Errorf("file exceeds the 10MB import limit")
	}

	f, err := os.Open(filePath)
	if err != nil {
		return result, err
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return result, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return result, err
	}
	if err := writer.Close(); err != nil {
		return result, err
	}

	raw, err := c.doRaw(ctx, http.MethodPost, "/employees/import", writer.FormDataContentType(), buf.Bytes())
	if err != nil {
		return result, err
	}

	var env objectEnvelope[ImportResult]
	if err := json.Unmarshal(raw, &env); err != nil {
		return result, fmt.Errorf("decode import result: %w", err)
	}
	return env.Data, nil
}

// ExportEmployees downloads the employee export as a blob. Format is one of
// excel, csv or pdf; fieldGroups selects which column groups to include.
func (c *Client) ExportEmployees(ctx context.Context, format string, fieldGroups []string, raw Params) ([]byte, error) {
	params := NormalizeParams(raw)
	params["format"] = format
	for i, g := range fieldGroups {
		params[fmt.Sprintf("fields[%d]", i)] = g
	}
	return c.doRaw(ctx, http.MethodGet, "/employees/export?"+encodeQuery(params), "", nil)
}
