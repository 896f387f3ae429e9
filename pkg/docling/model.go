package docling

type InputFormat string

const (
	InputFormatDocx        InputFormat = "docx"
	InputFormatPptx        InputFormat = "pptx"
	InputFormatHtml        InputFormat = "html"
	InputFormatImage       InputFormat = "image"
	InputFormatPdf         InputFormat = "pdf"
	InputFormatAsciidoc    InputFormat = "asciidoc"
	InputFormatMarkdown    InputFormat = "md"
	InputFormatCsv         InputFormat = "csv"
	InputFormatXlsx        InputFormat = "xlsx"
	InputFormatXmlUspto    InputFormat = "xml_uspto"
	InputFormatXmlJats     InputFormat = "xml_jats"
	InputFormatMetsGbs     InputFormat = "mets_gbs"
	InputFormatJsonDocling InputFormat = "json_docling"
	InputFormatAudio       InputFormat = "audio"
	InputFormatVtt         InputFormat = "vtt"
)

var InputFormats = []InputFormat{
	InputFormatDocx,
	InputFormatPptx,
	InputFormatHtml,
	InputFormatImage,
	InputFormatPdf,
	InputFormatAsciidoc,
	InputFormatMarkdown,
	InputFormatCsv,
	InputFormatXlsx,
	InputFormatXmlUspto,
	InputFormatXmlJats,
	InputFormatMetsGbs,
	InputFormatJsonDocling,
	InputFormatAudio,
	InputFormatVtt,
}

type OutputFormat string

const (
	OutputFormatMarkdown      OutputFormat = "md"
	OutputFormatJson          OutputFormat = "json"
	OutputFormatYaml          OutputFormat = "yaml"
	OutputFormatHtml          OutputFormat = "html"
	OutputFormatHtmlSplitPage OutputFormat = "html_split_page"
	OutputFormatText          OutputFormat = "text"
	OutputFormatDocTags       OutputFormat = "doctags"
)

var OutputFormats = []OutputFormat{
	OutputFormatMarkdown,
	OutputFormatJson,
	OutputFormatYaml,
	OutputFormatHtml,
	OutputFormatHtmlSplitPage,
	OutputFormatText,
	OutputFormatDocTags,
}

type ImageRefMode string

const (
	ImageRefModePlaceholder ImageRefMode = "placeholder"
	ImageRefModeEmbedded    ImageRefMode = "embedded"
	ImageRefModeReferenced  ImageRefMode = "referenced"
)

var ImageRefModes = []ImageRefMode{
	ImageRefModePlaceholder,
	ImageRefModeEmbedded,
	ImageRefModeReferenced,
}

type TableMode string

const (
	TableModeFast     TableMode = "fast"
	TableModeAccurate TableMode = "accurate"
)

var TableModes = []TableMode{
	TableModeFast,
	TableModeAccurate,
}

type PDFBackend string

const (
	PDFBackendPypdfium2 PDFBackend = "pypdfium2"
	PDFBackendDlparseV1 PDFBackend = "dlparse_v1"
	PDFBackendDlparseV2 PDFBackend = "dlparse_v2"
	PDFBackendDlparseV4 PDFBackend = "dlparse_v4"
)

var PDFBackends = []PDFBackend{
	PDFBackendPypdfium2,
	PDFBackendDlparseV1,
	PDFBackendDlparseV2,
	PDFBackendDlparseV4,
}

type Pipeline string

const (
	PipelineLegacy   Pipeline = "legacy"
	PipelineStandard Pipeline = "standard"
	PipelineVLM      Pipeline = "vlm"
	PipelineASR      Pipeline = "asr"
)

var Pipelines = []Pipeline{
	PipelineLegacy,
	PipelineStandard,
	PipelineVLM,
	PipelineASR,
}

type OCREngine string

const (
	OCREngineAuto      OCREngine = "auto"
	OCREngineEasyOCR   OCREngine = "easyocr"
	OCREngineOCRMac    OCREngine = "ocrmac"
	OCREngineRapidOCR  OCREngine = "rapidocr"
	OCREngineTesserOCR OCREngine = "tesserocr"
	OCREngineTesseract OCREngine = "tesseract"
)

var OCREngines = []OCREngine{
	OCREngineAuto,
	OCREngineEasyOCR,
	OCREngineOCRMac,
	OCREngineRapidOCR,
	OCREngineTesserOCR,
	OCREngineTesseract,
}

type VLMModel string

const (
	VLMModelSmolDocling         VLMModel = "smoldocling"
	VLMModelSmolDoclingVLLM     VLMModel = "smoldocling_vllm"
	VLMModelGraniteVision       VLMModel = "granite_vision"
	VLMModelGraniteVisionVLLM   VLMModel = "granite_vision_vllm"
	VLMModelGraniteVisionOllama VLMModel = "granite_vision_ollama"
	VLMModelGotOCR2             VLMModel = "got_ocr_2"
	VLMModelGraniteDocling      VLMModel = "granite_docling"
	VLMModelGraniteDoclingVLLM  VLMModel = "granite_docling_vllm"
	VLMModelDeepSeekOCROllama   VLMModel = "deepseekocr_ollama"
)

var VLMModels = []VLMModel{
	VLMModelSmolDocling,
	VLMModelSmolDoclingVLLM,
	VLMModelGraniteVision,
	VLMModelGraniteVisionVLLM,
	VLMModelGraniteVisionOllama,
	VLMModelGotOCR2,
	VLMModelGraniteDocling,
	VLMModelGraniteDoclingVLLM,
	VLMModelDeepSeekOCROllama,
}

// ConversionStatus is the per-document outcome reported inside a result.
// It is distinct from TaskStatus, which tracks the async job.
type ConversionStatus string

const (
	ConversionStatusPending        ConversionStatus = "pending"
	ConversionStatusStarted        ConversionStatus = "started"
	ConversionStatusFailure        ConversionStatus = "failure"
	ConversionStatusSuccess        ConversionStatus = "success"
	ConversionStatusPartialSuccess ConversionStatus = "partial_success"
	ConversionStatusSkipped        ConversionStatus = "skipped"
)

var ConversionStatuses = []ConversionStatus{
	ConversionStatusPending,
	ConversionStatusStarted,
	ConversionStatusFailure,
	ConversionStatusSuccess,
	ConversionStatusPartialSuccess,
	ConversionStatusSkipped,
}

type ComponentType string

const (
	ComponentTypeDocumentBackend ComponentType = "document_backend"
	ComponentTypeModel           ComponentType = "model"
	ComponentTypeDocAssembler    ComponentType = "doc_assembler"
	ComponentTypeUserInput       ComponentType = "user_input"
	ComponentTypePipeline        ComponentType = "pipeline"
)

var ComponentTypes = []ComponentType{
	ComponentTypeDocumentBackend,
	ComponentTypeModel,
	ComponentTypeDocAssembler,
	ComponentTypeUserInput,
	ComponentTypePipeline,
}

type ProfilingScope string

const (
	ProfilingScopePage     ProfilingScope = "page"
	ProfilingScopeDocument ProfilingScope = "document"
)

var ProfilingScopes = []ProfilingScope{
	ProfilingScopePage,
	ProfilingScopeDocument,
}

type TaskType string

const (
	TaskTypeConvert TaskType = "convert"
	TaskTypeChunk   TaskType = "chunk"
)

var TaskTypes = []TaskType{
	TaskTypeConvert,
	TaskTypeChunk,
}

// TargetType is the flat form of Target used by multipart requests.
type TargetType string

const (
	TargetTypeInBody TargetType = "inbody"
	TargetTypeZip    TargetType = "zip"
)

var TargetTypes = []TargetType{
	TargetTypeInBody,
	TargetTypeZip,
}
