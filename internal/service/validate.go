package service

import (
	"fmt"
	"strings"

	"docindex/internal/analyzer"
	"docindex/internal/model"
)

func validateNew(in model.NewDocument) error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "is required")
	}
	if strings.TrimSpace(in.FileType) == "" {
		return invalid("fileType", "is required")
	}
	if strings.TrimSpace(in.FileName) == "" {
		return invalid("fileName", "is required")
	}
	if strings.TrimSpace(in.UploadedBy) == "" {
		return invalid("uploadedBy", "is required")
	}
	if in.FileSize < 0 {
		return invalid("fileSize", "must not be negative")
	}
	return nil
}

func validatePatch(p model.DocumentPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return invalid("title", "must not be blank")
	}
	if p.Category != nil && !analyzer.IsCategory(*p.Category) {
		return invalid("category", "is not a known category")
	}
	if p.Tags != nil && len(*p.Tags) > analyzer.MaxTags {
		return invalid("tags", fmt.Sprintf("exceeds the maximum of %d", analyzer.MaxTags))
	}
	return nil
}
