package entity

import (
	"time"
)

type FileMetadata struct {
	ID         string    `json:"id" firestore:"id"`
	URL        string    `json:"url" firestore:"url"`
	ObjectName string    `json:"object_name" firestore:"objectName"`
	Folder     string    `json:"folder" firestore:"folder"`
	UploadedBy string    `json:"uploaded_by" firestore:"uploadedBy"`
	Filename   string    `json:"filename" firestore:"filename"`
	FileType   string    `json:"file_type" firestore:"fileType"`
	FileSize   int64     `json:"file_size" firestore:"fileSize"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

// StampIdentification is the model's best guess about a photographed stamp.
type StampIdentification struct {
	Name           string `json:"name"`
	Year           string `json:"year"`
	Country        string `json:"country"`
	Description    string `json:"description"`
	Rarity         string `json:"rarity"`
	EstimatedValue string `json:"estimated_value"`
}
