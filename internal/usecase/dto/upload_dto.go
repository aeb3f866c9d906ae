package dto

// UploadResult reports where an uploaded file landed.
type UploadResult struct {
	Bucket    string `json:"bucket"`
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
}
