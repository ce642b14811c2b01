package dto

// InfoResponse is the GET / liveness/info payload.
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// UploadResponse returns the servable path of a stored image.
type UploadResponse struct {
	URL string `json:"url"`
}

// CSVExport is a rendered CSV document plus its download filename.
type CSVExport struct {
	Filename string
	Data     []byte
}
