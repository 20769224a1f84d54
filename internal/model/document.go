package model

// Document is an indexed file: provenance metadata, extracted text and the
// search attributes derived from that text.
// Timestamps are milliseconds since the Unix epoch.
type Document struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	FileType     string   `json:"fileType"`
	FileName     string   `json:"fileName"`
	FileSize     int64    `json:"fileSize"`
	StorageID    *string  `json:"storageId,omitempty"`
	FileURL      *string  `json:"fileUrl,omitempty"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Project      *string  `json:"project,omitempty"`
	Team         *string  `json:"team,omitempty"`
	UploadedBy   string   `json:"uploadedBy"`
	UploadedAt   int64    `json:"uploadedAt"`
	LastModified int64    `json:"lastModified"`
	IndexedAt    int64    `json:"indexedAt"`
}

// NewDocument holds the caller-supplied fields of a document being created.
// Category and tags are never accepted here; they are derived from the text.
type NewDocument struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	FileType   string  `json:"fileType"`
	FileName   string  `json:"fileName"`
	FileSize   int64   `json:"fileSize"`
	StorageID  *string `json:"storageId,omitempty"`
	FileURL    *string `json:"fileUrl,omitempty"`
	Project    *string `json:"project,omitempty"`
	Team       *string `json:"team,omitempty"`
	UploadedBy string  `json:"uploadedBy"`
}

// DocumentPatch is a partial update. A nil field is absent from the call.
type DocumentPatch struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Category *string   `json:"category,omitempty"`
	Project  *string   `json:"project,omitempty"`
	Team     *string   `json:"team,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

// TouchesText reports whether the patch changes the title or the content.
func (p DocumentPatch) TouchesText() bool {
	return p.Title != nil || p.Content != nil
}

// Clone returns a deep copy so callers can mutate it without aliasing.
func (d Document) Clone() Document {
	out := d
	out.StorageID = cloneString(d.StorageID)
	out.FileURL = cloneString(d.FileURL)
	out.Project = cloneString(d.Project)
	out.Team = cloneString(d.Team)
	if d.Tags != nil {
		out.Tags = append(make([]string, 0, len(d.Tags)), d.Tags...)
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
