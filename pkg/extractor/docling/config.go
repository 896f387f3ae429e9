package docling

import (
	"github.com/adrianliechti/docling/pkg/docling"
)

type Option func(*Client)

// WithOptions sets the conversion options sent with every document.
func WithOptions(options *docling.ConvertOptions) Option {
	return func(c *Client) {
		c.options = options
	}
}

func WithWait(options *docling.WaitOptions) Option {
	return func(c *Client) {
		c.wait = options
	}
}
