package docling_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/adrianliechti/docling/pkg/docling"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestServer(t *testing.T) {
	if os.Getenv("DOCLING_INTEGRATION") == "" {
		t.Skip("set DOCLING_INTEGRATION to run against a docling-serve container")
	}

	ctx := context.Background()

	server, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,

		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "quay.io/docling-project/docling-serve-cpu",
			ExposedPorts: []string{"5001/tcp"},
			WaitingFor:   wait.ForHTTP("/health").WithPort("5001/tcp").WithStartupTimeout(5 * time.Minute),
		},
	})

	require.NoError(t, err)
	testcontainers.CleanupContainer(t, server)

	url, err := server.Endpoint(ctx, "")
	require.NoError(t, err)

	c, err := docling.New("http://" + url)
	require.NoError(t, err)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)

	path := writeTestFile(t, "hello.md", "# Hello\n\nDocling from Go.")

	result, err := c.WaitForFile(ctx, docling.FileRequest{
		Paths: []string{path},

		Options: &docling.ConvertOptions{
			FromFormats: []docling.InputFormat{docling.InputFormatMarkdown},
			ToFormats:   []docling.OutputFormat{docling.OutputFormatMarkdown},
		},
	}, &docling.WaitOptions{
		Timeout:      5 * time.Minute,
		PollInterval: time.Second,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Document.Markdown)
	require.Contains(t, *result.Document.Markdown, "Hello")
}
