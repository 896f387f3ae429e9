package docling

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithLimiter makes every request wait for the limiter first.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func Ptr[T any](v T) *T {
	return &v
}

var SupportedExtensions = []string{
	".pdf",

	".jpeg", ".jpg",
	".png",
	".bmp",
	".tiff", ".tif",
	".webp",

	".docx",
	".pptx",
	".xlsx",

	".html", ".htm",
	".md",
	".csv",
	".xml",
	".json",

	".mp3",
	".wav",
	".vtt",
}

var SupportedMimeTypes = []string{
	"application/pdf",

	"image/jpeg",
	"image/png",
	"image/bmp",
	"image/tiff",
	"image/webp",

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",

	"text/html",
	"text/markdown",
	"text/csv",
	"application/xml",
	"application/json",

	"audio/mpeg",
	"audio/wav",
	"text/vtt",
}

var contentTypes = map[string]string{
	".pdf": "application/pdf",

	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",

	".html": "text/html",
	".htm":  "text/html",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".json": "application/json",
	".xml":  "application/xml",

	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".bmp":  "image/bmp",
	".webp": "image/webp",

	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".vtt": "text/vtt",
}
