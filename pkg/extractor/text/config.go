package text

// SupportedExtensions lists text files read locally. Markdown is only
// reached when docling rejects a file.
var SupportedExtensions = []string{
	".txt",
	".log",

	".csv",
	".tsv",

	".json",
	".xml",
	".yaml",
	".yml",
	".toml",

	".ini",
	".conf",
	".md",
	".rst",
}

var SupportedMimeTypes = []string{
	"text/plain",
	"text/markdown",

	"text/csv",
	"text/tab-separated-values",

	"application/json",
	"application/xml",
	"application/yaml",
	"application/toml",
}
