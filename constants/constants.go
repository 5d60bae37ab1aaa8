package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// GetMetadataEndpoint returns the DynamoDB endpoint for song metadata
// lookups. Empty means metadata enrichment is disabled.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

// target printed grid width in cm, leaving room for the row labels
const TargetWidthCm = 13.0
