package domain

// AttachmentKind is the media category of an attachment reference.
type AttachmentKind string

const (
	AttachmentImage    AttachmentKind = "image"
	AttachmentDocument AttachmentKind = "document"
	AttachmentLink     AttachmentKind = "link"
)

// Attachment is a value type: it is copied into whichever post or reply
// references it and is not independently addressable.
type Attachment struct {
	Id   PostId         `json:"id"`
	Kind AttachmentKind `json:"kind"`
	Url  string         `json:"url"`
	Name string         `json:"name"`
	Size int64          `json:"size,omitempty"`
}
