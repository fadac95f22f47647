package http

import (
	"path"
	"strings"

	"github.com/Chetan55567/portfolio-api/internal/domain/profile"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Action   string `json:"action"`
}

// UpdateProfileDataRequest is the {profile?, settings?} patch envelope;
// either side may be omitted.
type UpdateProfileDataRequest struct {
	Profile  *profile.ProfilePatch  `json:"profile"`
	Settings *profile.SettingsPatch `json:"settings"`
}

type UploadPhotoResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

type UploadResumeResponse struct {
	Success          bool                  `json:"success"`
	Path             string                `json:"path"`
	ExtractedProfile *profile.ProfilePatch `json:"extractedProfile"`
	ExtractionError  *string               `json:"extractionError"`
	AIAvailable      bool                  `json:"aiAvailable"`
}

type ResumeMetaResponse struct {
	AIAvailable bool   `json:"aiAvailable"`
	Provider    string `json:"provider"`
}

var contentTypesByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

func contentTypeForFilename(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ct, ok := contentTypesByExt[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
