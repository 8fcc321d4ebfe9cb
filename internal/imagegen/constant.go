package imagegen

import "time"

// Log prefixes
const (
	LogPrefixEnhance  = "internal.imagegen.Enhance"
	LogPrefixGenerate = "internal.imagegen.Generate"
	LogPrefixSave     = "internal.imagegen.save"
)

const (
	DefaultOutputDir       = "generated_images"
	DefaultModel           = "dall-e-3"
	DefaultSize            = "1024x1024"
	DefaultQuality         = "standard"
	DefaultDownloadTimeout = 30 * time.Second

	EnhanceTemperature = 0.7
	EnhanceMaxTokens   = 300

	// fileNamePromptLen bounds the prompt fragment used in saved file names.
	fileNamePromptLen = 30
	FileTimeLayout    = "20060102_150405"
)

var (
	Sizes     = []string{"1024x1024", "1792x1024", "1024x1792"}
	Qualities = []string{"standard", "hd"}
)

// styles is ordered; detection takes the first match.
var styles = []Style{
	{"realistic", "Photorealistic style with natural lighting"},
	{"artistic", "Artistic interpretation with creative elements"},
	{"cartoon", "Cartoon or animated style"},
	{"oil_painting", "Classical oil painting style"},
	{"watercolor", "Soft watercolor painting style"},
	{"digital_art", "Modern digital art style"},
	{"sketch", "Pencil sketch or line drawing style"},
	{"3d_render", "3D rendered image style"},
	{"minimalist", "Clean, minimalist design"},
	{"vintage", "Retro or vintage aesthetic"},
}

// requestPhrases is ordered; stripping uses the first phrase found.
var requestPhrases = []string{
	"generate an image of",
	"generate image of",
	"create an image of",
	"create image of",
	"draw",
	"make an image of",
	"make image of",
	"i want an image of",
	"show me",
	"picture of",
	"image of",
}

const PromptEnhanceSystem = `You are an expert at writing prompts for AI image generation.
Your task is to enhance user prompts to create better, more detailed image descriptions.

Guidelines:
- Add specific visual details (lighting, composition, colors)
- Include artistic style elements if appropriate
- Keep the core concept from the user's prompt
- Add descriptive adjectives that enhance visual quality
- Keep the enhanced prompt under 200 words
- DO NOT include any harmful, violent, or inappropriate content
- Return ONLY the enhanced prompt, no explanations`

const (
	PromptEnhanceUser = "Enhance this image prompt: %s%s"
	StyleGuidance     = " The image should be in a %s style."
)

// User-facing error texts.
const (
	MsgInvalidRequest = "Invalid request: %v"
	MsgRateLimited    = "Rate limit exceeded. Please try again later."
	MsgAuthFailed     = "Authentication failed. Check your API key."
	MsgGeneric        = "Image generation error: %v"
)
