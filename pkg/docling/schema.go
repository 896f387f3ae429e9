package docling

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

var optionsSchema = &jsonschema.Schema{
	Type: "object",

	Properties: map[string]*jsonschema.Schema{
		"from_formats": arrayOf(enumOf(InputFormats)),
		"to_formats":   arrayOf(enumOf(OutputFormats)),

		"image_export_mode": enumOf(ImageRefModes),

		"do_ocr":     {Type: "boolean"},
		"force_ocr":  {Type: "boolean"},
		"ocr_engine": enumOf(OCREngines),
		"ocr_lang":   arrayOf(&jsonschema.Schema{Type: "string"}),

		"pdf_backend": enumOf(PDFBackends),

		"table_mode":          enumOf(TableModes),
		"table_cell_matching": {Type: "boolean"},
		"do_table_structure":  {Type: "boolean"},

		"pipeline": enumOf(Pipelines),
		"page_range": {
			Type:     "array",
			Items:    &jsonschema.Schema{Type: "number", Minimum: Ptr(1.0)},
			MinItems: Ptr(2),
			MaxItems: Ptr(2),
		},

		"document_timeout": {Type: "number", Minimum: Ptr(0.0)},
		"abort_on_error":   {Type: "boolean"},

		"include_images": {Type: "boolean"},
		"images_scale":   {Type: "number", Minimum: Ptr(0.0)},

		"md_page_break_placeholder": {Type: "string"},

		"do_code_enrichment":        {Type: "boolean"},
		"do_formula_enrichment":     {Type: "boolean"},
		"do_picture_classification": {Type: "boolean"},
		"do_chart_extraction":       {Type: "boolean"},
		"do_picture_description":    {Type: "boolean"},

		"picture_description_area_threshold": {Type: "number", Minimum: Ptr(0.0)},
		"picture_description_local":          {Type: "object"},
		"picture_description_api":            {Type: "object"},

		"vlm_pipeline_model":       enumOf(VLMModels),
		"vlm_pipeline_model_local": {Type: "object"},
		"vlm_pipeline_model_api":   {Type: "object"},
	},
}

var optionNames = slices.Sorted(maps.Keys(optionsSchema.Properties))

var resolvedOptionsSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return optionsSchema.Resolve(nil)
})

// OptionsSchema returns the JSON Schema of the known conversion options.
// Fields outside the schema are accepted and passed through.
func OptionsSchema() *jsonschema.Schema {
	data, err := json.Marshal(optionsSchema)

	if err != nil {
		panic(err)
	}

	schema := new(jsonschema.Schema)

	if err := schema.UnmarshalJSON(data); err != nil {
		panic(err)
	}

	return schema
}

// Validate checks the options against OptionsSchema.
func (o *ConvertOptions) Validate() error {
	if o == nil {
		return nil
	}

	data, err := json.Marshal(o)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	var fields map[string]any

	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	schema, err := resolvedOptionsSchema()

	if err != nil {
		return err
	}

	if err := schema.Validate(fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

func enumOf[T ~string](values []T) *jsonschema.Schema {
	enum := make([]any, 0, len(values))

	for _, v := range values {
		enum = append(enum, string(v))
	}

	return &jsonschema.Schema{
		Type: "string",
		Enum: enum,
	}
}

func arrayOf(items *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:  "array",
		Items: items,
	}
}
