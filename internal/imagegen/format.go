package imagegen

import "strings"

// Format renders a generation result for display.
func Format(out Output) string {
	if out.Error != "" {
		return "Image Generation Error: " + out.Error
	}

	lines := []string{
		"Image Generated Successfully!",
		strings.Repeat("-", 40),
		"Original Prompt: " + out.Query,
	}
	if out.EnhancedPrompt != "" {
		lines = append(lines, "\nEnhanced Prompt: "+out.EnhancedPrompt)
	}
	if out.ImageURL != "" {
		lines = append(lines, "\nImage URL: "+out.ImageURL)
	}
	if out.LocalPath != "" {
		lines = append(lines, "Saved to: "+out.LocalPath)
	}
	return strings.Join(lines, "\n")
}
