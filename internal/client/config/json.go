package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/docshare/internal/flagx"
	"github.com/dmitrijs2005/docshare/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the presign expiry either as a string
// like "15m" or as integer nanoseconds. Parsed values are copied into the
// runtime Config.
type JsonConfig struct {
	MetadataDSN   string         `json:"metadata_dsn"`
	S3Endpoint    string         `json:"s3_endpoint"`
	S3Region      string         `json:"s3_region"`
	S3Bucket      string         `json:"s3_bucket"`
	S3AccessKey   string         `json:"s3_access_key"`
	S3SecretKey   string         `json:"s3_secret_key"`
	PublicBaseURL string         `json:"public_base_url"`
	PresignExpiry timex.Duration `json:"presign_expiry"`
	LocalDBFile   string         `json:"local_db_file"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. When no file is given, nothing happens.
// Read or unmarshal errors panic (caller should recover if desired).
// Only fields actually present in the file override the config.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlayString(&cfg.MetadataDSN, jc.MetadataDSN)
	overlayString(&cfg.S3Endpoint, jc.S3Endpoint)
	overlayString(&cfg.S3Region, jc.S3Region)
	overlayString(&cfg.S3Bucket, jc.S3Bucket)
	overlayString(&cfg.S3AccessKey, jc.S3AccessKey)
	overlayString(&cfg.S3SecretKey, jc.S3SecretKey)
	overlayString(&cfg.PublicBaseURL, jc.PublicBaseURL)
	overlayString(&cfg.LocalDBFile, jc.LocalDBFile)
	if jc.PresignExpiry.Duration != 0 {
		cfg.PresignExpiry = jc.PresignExpiry.Duration
	}
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
