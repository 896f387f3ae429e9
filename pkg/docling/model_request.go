package docling

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
)

type SourceKind string

const (
	SourceKindHTTP SourceKind = "http"
	SourceKindFile SourceKind = "file"
)

// Source is a document to convert, either fetched by the server from a URL
// or sent inline as base64 content.
type Source struct {
	Kind SourceKind `json:"kind"`

	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`

	Base64String string `json:"base64_string,omitempty"`
	Filename     string `json:"filename,omitempty"`
}

func HTTPSource(url string) Source {
	return Source{
		Kind: SourceKindHTTP,
		URL:  url,
	}
}

func FileSource(name string, content []byte) Source {
	return Source{
		Kind: SourceKindFile,

		Filename:     name,
		Base64String: base64.StdEncoding.EncodeToString(content),
	}
}

type Target struct {
	Kind TargetType `json:"kind"`
}

// ConvertOptions mirrors the server's conversion options. Every field is
// optional; unset fields are left out of the request so the server applies
// its own defaults. Extra carries fields this client does not know yet.
type ConvertOptions struct {
	FromFormats []InputFormat  `json:"from_formats,omitempty"`
	ToFormats   []OutputFormat `json:"to_formats,omitempty"`

	ImageExportMode *ImageRefMode `json:"image_export_mode,omitempty"`

	DoOCR     *bool      `json:"do_ocr,omitempty"`
	ForceOCR  *bool      `json:"force_ocr,omitempty"`
	OCREngine *OCREngine `json:"ocr_engine,omitempty"`
	OCRLang   []string   `json:"ocr_lang,omitempty"`

	PDFBackend *PDFBackend `json:"pdf_backend,omitempty"`

	TableMode         *TableMode `json:"table_mode,omitempty"`
	TableCellMatching *bool      `json:"table_cell_matching,omitempty"`
	DoTableStructure  *bool      `json:"do_table_structure,omitempty"`

	Pipeline  *Pipeline `json:"pipeline,omitempty"`
	PageRange *[2]int   `json:"page_range,omitempty"`

	DocumentTimeout *float64 `json:"document_timeout,omitempty"`
	AbortOnError    *bool    `json:"abort_on_error,omitempty"`

	IncludeImages *bool    `json:"include_images,omitempty"`
	ImagesScale   *float64 `json:"images_scale,omitempty"`

	MarkdownPageBreakPlaceholder *string `json:"md_page_break_placeholder,omitempty"`

	DoCodeEnrichment        *bool `json:"do_code_enrichment,omitempty"`
	DoFormulaEnrichment     *bool `json:"do_formula_enrichment,omitempty"`
	DoPictureClassification *bool `json:"do_picture_classification,omitempty"`
	DoChartExtraction       *bool `json:"do_chart_extraction,omitempty"`
	DoPictureDescription    *bool `json:"do_picture_description,omitempty"`

	PictureDescriptionAreaThreshold *float64       `json:"picture_description_area_threshold,omitempty"`
	PictureDescriptionLocal         map[string]any `json:"picture_description_local,omitempty"`
	PictureDescriptionAPI           map[string]any `json:"picture_description_api,omitempty"`

	VLMPipelineModel      *VLMModel      `json:"vlm_pipeline_model,omitempty"`
	VLMPipelineModelLocal map[string]any `json:"vlm_pipeline_model_local,omitempty"`
	VLMPipelineModelAPI   map[string]any `json:"vlm_pipeline_model_api,omitempty"`

	Extra map[string]any `json:"-"`
}

type convertOptions ConvertOptions

func (o ConvertOptions) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(convertOptions(o))

	if err != nil || len(o.Extra) == 0 {
		return data, err
	}

	fields, err := decodeFields(data)

	if err != nil {
		return nil, err
	}

	for k, v := range o.Extra {
		if _, ok := fields[k]; ok {
			continue
		}

		fields[k] = v
	}

	return json.Marshal(fields)
}

func (o *ConvertOptions) UnmarshalJSON(data []byte) error {
	var known convertOptions

	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	fields, err := decodeFields(data)

	if err != nil {
		return err
	}

	for _, name := range optionNames {
		delete(fields, name)
	}

	known.Extra = nil

	if len(fields) > 0 {
		known.Extra = fields
	}

	*o = ConvertOptions(known)
	return nil
}

// Fields returns the options as the sparse field map sent to the server.
// Numbers are json.Number values so large integers keep their exact value.
func (o *ConvertOptions) Fields() (map[string]any, error) {
	if o == nil {
		return map[string]any{}, nil
	}

	data, err := json.Marshal(o)

	if err != nil {
		return nil, err
	}

	return decodeFields(data)
}

func decodeFields(data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var fields map[string]any

	if err := decoder.Decode(&fields); err != nil {
		return nil, err
	}

	if fields == nil {
		fields = map[string]any{}
	}

	return fields, nil
}

// ConvertRequest is the JSON body of the source conversion endpoints.
type ConvertRequest struct {
	Sources []Source `json:"sources"`

	Options *ConvertOptions `json:"options,omitempty"`
	Target  *Target         `json:"target,omitempty"`
}

// FileRequest describes a multipart upload of local files.
type FileRequest struct {
	Paths []string

	Options    *ConvertOptions
	TargetType *TargetType
}
