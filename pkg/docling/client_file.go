package docling

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// ConvertFile uploads local files and waits for the server to finish.
func (c *Client) ConvertFile(ctx context.Context, input FileRequest) (*ConvertResult, error) {
	var result ConvertResult

	if err := c.postFiles(ctx, "/v1/convert/file", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// ConvertFileAsync uploads local files as a background task on the server.
func (c *Client) ConvertFileAsync(ctx context.Context, input FileRequest) (*Task, error) {
	var task Task

	if err := c.postFiles(ctx, "/v1/convert/file/async", input, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

type upload struct {
	name        string
	contentType string

	content []byte
}

func (c *Client) postFiles(ctx context.Context, path string, input FileRequest, result any) error {
	if len(input.Paths) == 0 {
		return errors.New("no files")
	}

	if err := input.Options.Validate(); err != nil {
		return err
	}

	// all files are read up front so a bad path never leaves a partial upload
	var uploads []upload

	for _, p := range input.Paths {
		data, err := os.ReadFile(p)

		if err != nil {
			return &FileError{Path: p, Err: err}
		}

		uploads = append(uploads, upload{
			name:        filepath.Base(p),
			contentType: detectContentType(p),

			content: data,
		})
	}

	body, contentType, err := buildForm(uploads, input.Options, input.TargetType)

	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, body)

	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", contentType)

	c.authorize(req)

	return c.do(req, result)
}

func buildForm(uploads []upload, options *ConvertOptions, target *TargetType) (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for _, u := range uploads {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", multipart.FileContentDisposition("files", u.name))
		h.Set("Content-Type", u.contentType)

		f, err := w.CreatePart(h)

		if err != nil {
			return nil, "", err
		}

		if _, err := f.Write(u.content); err != nil {
			return nil, "", err
		}
	}

	if target != nil {
		if err := w.WriteField("target_type", string(*target)); err != nil {
			return nil, "", err
		}
	}

	fields, err := options.Fields()

	if err != nil {
		return nil, "", err
	}

	if err := writeFields(w, fields); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &body, w.FormDataContentType(), nil
}

func detectContentType(path string) string {
	if t, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}

	return "application/octet-stream"
}
