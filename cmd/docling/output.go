package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/adrianliechti/docling/pkg/docling"
)

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// printResult prints the first available content of the converted document.
// Conversion errors reported by the server are logged as warnings.
func (a *app) printResult(result *docling.ConvertResult) error {
	for _, e := range result.Errors {
		slog.Warn("conversion error", "component", e.ComponentType, "module", e.ModuleName, "message", e.ErrorMessage)
	}

	if a.json {
		return printJSON(result)
	}

	doc := result.Document

	for _, content := range []*string{doc.Markdown, doc.Text, doc.HTML, doc.DocTags} {
		if content != nil && *content != "" {
			fmt.Println(*content)
			return nil
		}
	}

	if len(doc.JSON) > 0 && string(doc.JSON) != "null" {
		_, err := os.Stdout.Write(append(doc.JSON, '\n'))
		return err
	}

	slog.Warn("no content", "status", result.Status)
	return nil
}
