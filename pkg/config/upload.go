package config

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
}

// xlsx - это zip-архив, DetectContentType видит его как application/zip.
var UploadContexts = map[string]UploadConfig{
	"equipment_import": {
		AllowedMimeTypes: []string{"application/zip", "application/octet-stream"},
		MaxSizeMB:        20,
	},
}
