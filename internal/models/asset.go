package models

// AssetUpload is one entry of the upload payload.
type AssetUpload struct {
	DataURL  string `json:"dataUrl"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Category string `json:"category"`
}

// AssetRecord is the stored form of an uploaded asset. Identity is the ID, not
// the content: two uploads of identical bytes yield two distinct records.
type AssetRecord struct {
	ID       string `json:"id"`
	DataURL  string `json:"dataUrl"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Category string `json:"category"`
}

// AssetReference is the public projection of an AssetRecord returned to the
// caller after upload. It carries no bytes; URL is always "/assets/{id}".
type AssetReference struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	Category string `json:"category"`
}

// AssetListResponse is the list endpoint payload.
type AssetListResponse struct {
	Count  int              `json:"count"`
	Assets []AssetReference `json:"assets"`
}
