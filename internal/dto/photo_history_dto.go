package dto

import "time"

// CreatePhotoHistoryRequest carries the multipart upload fields.
// ClientDate is the optional ISO-8601 capture time sent by the client;
// it wins over any EXIF date embedded in the image.
type CreatePhotoHistoryRequest struct {
	PlantId    int64
	FileName   string
	Data       []byte
	ClientDate string
}

type PhotoHistoryResponse struct {
	Id            int64     `json:"id"`
	PlantId       int64     `json:"plant_id"`
	ImageLocation string    `json:"image_location"`
	CreatedAt     time.Time `json:"created_at"`
}

// PhotoImageResponse is the raw stored file plus its inferred MIME type.
type PhotoImageResponse struct {
	Data     []byte
	MimeType string
}
