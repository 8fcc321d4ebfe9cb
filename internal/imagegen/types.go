package imagegen

import "time"

// Style is a named rendering style a request can mention.
type Style struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Config configures the image use case. Zero values take the defaults.
type Config struct {
	OutputDir       string
	Model           string
	Size            string
	Quality         string
	DownloadTimeout time.Duration
}

type GenerateInput struct {
	Prompt  string
	Style   string
	Size    string
	Quality string
	Enhance bool
}

type Output struct {
	Query          string `json:"prompt"`
	OriginalPrompt string `json:"original_prompt"`
	EnhancedPrompt string `json:"enhanced_prompt,omitempty"`
	Style          string `json:"style,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	LocalPath      string `json:"local_path,omitempty"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	Formatted      string `json:"formatted"`
	Error          string `json:"error,omitempty"`
}

type PreviewOutput struct {
	Prompt   string `json:"prompt"`
	Enhanced string `json:"enhanced_prompt"`
	Style    string `json:"style,omitempty"`
}
