package assistant

import (
	"fmt"
	"strings"
)

// ChatSystemPrompt frames the plain chat tab.
const ChatSystemPrompt = "You are a helpful AI assistant. Provide clear, concise, and helpful responses."

// Option lists for the tool forms, in display order.
var (
	ExplainerLanguages = []string{
		"Python", "JavaScript", "Java", "C++", "C#", "Go", "Rust", "PHP", "Ruby", "Other",
	}
	ExplanationTypes = []string{"Simple", "Detailed", "Line by Line"}

	SummaryLengths = []string{
		"Brief (1-2 paragraphs)", "Medium (3-4 paragraphs)", "Detailed (5+ paragraphs)",
	}
	SummaryStyles = []string{"Executive Summary", "Key Points", "Abstract", "Bullet Points"}

	ImageStyles = []string{
		"Photorealistic", "Digital Art", "Oil Painting", "Watercolor",
		"Sketch", "3D Render", "Anime", "Abstract",
	}
	ImageMoods = []string{
		"Bright & Cheerful", "Dark & Moody", "Calm & Peaceful",
		"Energetic", "Mysterious", "Dramatic",
	}

	GeneratorLanguages = []string{
		"Python", "JavaScript", "Java", "C++", "C#", "Go", "Rust", "PHP", "Ruby", "TypeScript",
	}
	CodeStyles = []string{"Clean & Simple", "Well-commented", "Production-ready", "Beginner-friendly"}
)

// codeExtensions maps generator languages to download suffixes.
var codeExtensions = map[string]string{
	"Python": ".py", "JavaScript": ".js", "Java": ".java",
	"C++": ".cpp", "C#": ".cs", "Go": ".go", "Rust": ".rs",
	"PHP": ".php", "Ruby": ".rb", "TypeScript": ".ts",
}

// FileExtensionFor returns the download suffix for generated code, ".txt"
// for languages without one.
func FileExtensionFor(language string) string {
	if ext, ok := codeExtensions[language]; ok {
		return ext
	}
	return ".txt"
}

// ExplainCodePrompt builds the code-explainer prompt.
func ExplainCodePrompt(code, language, explanationType string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please explain this %s code.\n", language)
	fmt.Fprintf(&b, "Explanation type: %s\n\n", explanationType)
	fmt.Fprintf(&b, "Code:\n```%s\n%s\n```\n\n", strings.ToLower(language), code)
	b.WriteString("Please provide a clear explanation of:\n")
	b.WriteString("1. What the code does\n")
	b.WriteString("2. How it works\n")
	b.WriteString("3. Key concepts used\n")
	if explanationType == "Line by Line" {
		b.WriteString("4. Line-by-line breakdown\n")
	}
	return b.String()
}

// SummarizePrompt builds the document-summarizer prompt. Length is one of
// SummaryLengths; only its leading word steers the model.
func SummarizePrompt(document, length, style string) string {
	short := strings.ToLower(strings.Fields(length)[0])

	var b strings.Builder
	fmt.Fprintf(&b, "Please create a %s summary of the following document in %s style:\n\n",
		short, strings.ToLower(style))
	fmt.Fprintf(&b, "Document:\n%s\n\n", document)
	b.WriteString("Please provide:\n")
	b.WriteString("1. Main themes and topics\n")
	b.WriteString("2. Key insights or findings\n")
	b.WriteString("3. Important conclusions\n")
	if style == "Bullet Points" {
		b.WriteString("4. Present as bullet points\n")
	}
	return b.String()
}

// ImagePrompt builds the image-prompt generator prompt. The output is a
// text prompt for an image service, not an image.
func ImagePrompt(description, style, mood string) string {
	var b strings.Builder
	b.WriteString("Create a detailed, professional image generation prompt based on this description:\n")
	fmt.Fprintf(&b, "%q\n\n", description)
	fmt.Fprintf(&b, "Style: %s\n", style)
	fmt.Fprintf(&b, "Mood: %s\n\n", mood)
	b.WriteString("Please provide:\n")
	b.WriteString("1. An enhanced, detailed prompt optimized for AI image generation\n")
	b.WriteString("2. Technical specifications (lighting, composition, camera angle)\n")
	b.WriteString("3. Style and quality modifiers\n")
	b.WriteString("4. Negative prompts (what to avoid)\n\n")
	b.WriteString("Format the response as a ready-to-use prompt for image generation services.\n")
	return b.String()
}

// GenerateCodePrompt builds the code-generator prompt.
func GenerateCodePrompt(description, language, style string, includeTests bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %s code based on this description:\n", language)
	fmt.Fprintf(&b, "%q\n\n", description)
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Style: %s\n", style)
	fmt.Fprintf(&b, "- Language: %s\n", language)
	if includeTests {
		b.WriteString("- Include comprehensive test cases\n")
	}
	b.WriteString("\nPlease provide:\n")
	b.WriteString("1. Clean, working code\n")
	b.WriteString("2. Clear comments explaining the logic\n")
	b.WriteString("3. Usage examples\n")
	if includeTests {
		b.WriteString("4. Test cases to verify functionality\n")
	}
	b.WriteString("\nFormat the code properly with appropriate syntax highlighting.\n")
	return b.String()
}
