package docling_test

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/docling/pkg/docling"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestConvertFile(t *testing.T) {
	s := newFakeServer(t)

	c, err := docling.New(s.URL, docling.WithToken("secret"))
	require.NoError(t, err)

	pdf := writeTestFile(t, "report.pdf", "%PDF-1.4")
	notes := writeTestFile(t, "notes.unknown", "plain")

	result, err := c.ConvertFile(context.Background(), docling.FileRequest{
		Paths: []string{pdf, notes},

		Options: &docling.ConvertOptions{
			ToFormats: []docling.OutputFormat{docling.OutputFormatMarkdown, docling.OutputFormatText},
			OCRLang:   []string{"en", "de"},
			PageRange: &[2]int{1, 5},

			DoOCR:       docling.Ptr(true),
			ImagesScale: docling.Ptr(1.5),
			TableMode:   docling.Ptr(docling.TableModeFast),

			PictureDescriptionAPI: map[string]any{"url": "http://vlm"},
		},

		TargetType: docling.Ptr(docling.TargetTypeInBody),
	})

	require.NoError(t, err)
	require.Equal(t, "test.pdf", result.Document.Filename)
	require.Equal(t, "Bearer secret", s.Auth("/v1/convert/file"))

	form := s.Form()
	require.NotNil(t, form)

	files := form.File["files"]
	require.Len(t, files, 2)

	require.Equal(t, "report.pdf", files[0].Filename)
	require.Equal(t, "application/pdf", files[0].Header.Get("Content-Type"))
	require.Equal(t, "notes.unknown", files[1].Filename)
	require.Equal(t, "application/octet-stream", files[1].Header.Get("Content-Type"))

	f, err := files[0].Open()
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4", string(data))

	require.Equal(t, []string{"md", "text"}, form.Value["to_formats"])
	require.Equal(t, []string{"en", "de"}, form.Value["ocr_lang"])
	require.Equal(t, []string{"1", "5"}, form.Value["page_range"])
	require.Equal(t, []string{"true"}, form.Value["do_ocr"])
	require.Equal(t, []string{"1.5"}, form.Value["images_scale"])
	require.Equal(t, []string{"fast"}, form.Value["table_mode"])
	require.Equal(t, []string{`{"url":"http://vlm"}`}, form.Value["picture_description_api"])
	require.Equal(t, []string{"inbody"}, form.Value["target_type"])

	require.NotContains(t, form.Value, "force_ocr")
	require.NotContains(t, form.Value, "pipeline")
}

func TestConvertFileLargeNumbers(t *testing.T) {
	s := newFakeServer(t)

	c, err := docling.New(s.URL)
	require.NoError(t, err)

	path := writeTestFile(t, "report.pdf", "%PDF")

	_, err = c.ConvertFile(context.Background(), docling.FileRequest{
		Paths: []string{path},

		Options: &docling.ConvertOptions{
			PageRange: &[2]int{1, math.MaxInt64},

			Extra: map[string]any{
				"max_pages": json.Number("9007199254740993"),
			},
		},
	})

	require.NoError(t, err)

	form := s.Form()
	require.Equal(t, []string{"1", "9223372036854775807"}, form.Value["page_range"])
	require.Equal(t, []string{"9007199254740993"}, form.Value["max_pages"])
}

func TestConvertFileAsync(t *testing.T) {
	s := newFakeServer(t)

	c, err := docling.New(s.URL)
	require.NoError(t, err)

	path := writeTestFile(t, "slides.pptx", "pptx")

	task, err := c.ConvertFileAsync(context.Background(), docling.FileRequest{
		Paths: []string{path},
	})

	require.NoError(t, err)
	require.Equal(t, "task-1", task.TaskID)

	form := s.Form()
	require.Len(t, form.File["files"], 1)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.presentationml.presentation", form.File["files"][0].Header.Get("Content-Type"))
	require.NotContains(t, form.Value, "target_type")
}

func TestConvertFileMissingPath(t *testing.T) {
	s := newFakeServer(t)

	c, err := docling.New(s.URL)
	require.NoError(t, err)

	existing := writeTestFile(t, "a.pdf", "%PDF")
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	_, err = c.ConvertFile(context.Background(), docling.FileRequest{
		Paths: []string{existing, missing},
	})

	var fileErr *docling.FileError
	require.ErrorAs(t, err, &fileErr)
	require.Equal(t, missing, fileErr.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorIs(t, err, docling.ErrFile)

	_, err = c.WaitForFile(context.Background(), docling.FileRequest{
		Paths: []string{missing},
	}, nil)

	require.ErrorIs(t, err, docling.ErrFile)

	require.Empty(t, s.Calls())
}

func TestConvertFileRequiresPaths(t *testing.T) {
	s := newFakeServer(t)

	c, err := docling.New(s.URL)
	require.NoError(t, err)

	_, err = c.ConvertFileAsync(context.Background(), docling.FileRequest{})
	require.Error(t, err)

	require.Empty(t, s.Calls())
}
