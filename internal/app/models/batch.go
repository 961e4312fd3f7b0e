package models

// Attachment is a local file chosen by the user, sent as a binary part.
type Attachment struct {
	Filename string `validate:"required"`
	Data     []byte `validate:"min=1"`
}

// UploadBatchItem is one question submitted in a multipart batch.
type UploadBatchItem struct {
	Statement  string        `validate:"required"`
	Difficulty string        `validate:"required"`
	AreaID     int64         `validate:"gt=0"`
	TopicID    *int64        `validate:"omitempty,gt=0"`
	Options    []BatchOption `validate:"min=2,dive"`
	Image      *Attachment   `validate:"omitempty"`
}

type BatchOption struct {
	Text    string      `validate:"required"`
	Correct bool
	Image   *Attachment `validate:"omitempty"`
}
