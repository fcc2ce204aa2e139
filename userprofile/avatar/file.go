package avatar

import (
	"time"

	"github.com/kbukum/baasic/route"
)

// File is an avatar file entry.
type File struct {
	ID          string    `json:"id,omitempty"`
	FileName    string    `json:"fileName,omitempty"`
	Path        string    `json:"path,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	ContentType string    `json:"contentType,omitempty"`
	FileSize    int64     `json:"fileSize,omitempty"`
	DateCreated time.Time `json:"dateCreated,omitzero"`
	DateUpdated time.Time `json:"dateUpdated,omitzero"`
}

// StreamRequest selects an avatar stream. A zero Width and Height select the
// original file; otherwise the derived image of that size.
type StreamRequest struct {
	ID     string
	Width  int
	Height int
}

func (r StreamRequest) params() route.Params {
	p := route.Params{"id": r.ID}
	if r.Width > 0 {
		p["width"] = r.Width
	}
	if r.Height > 0 {
		p["height"] = r.Height
	}
	return p
}
