package summarizer

import "fmt"

// Output types.
const (
	OutputBlog    = "blog"
	OutputArticle = "article"
)

const (
	blogTemplate    = "%s Write part of a detailed blog post based on the following text generated from %s:\n\n%s\n\nBLOG POST:"
	articleTemplate = "%s Write a factual, dense knowledge article for an internal wiki summarizing the following text generated from %s:\n\n%s\n\nARTICLE:"
)

// Prompt renders the instruction used for both the map and combine steps.
type Prompt struct {
	OutputType     string
	GeneralContext string
	Context        string
}

// Render fills the template with text.
func (p Prompt) Render(text string) string {
	tmpl := blogTemplate
	if p.OutputType == OutputArticle {
		tmpl = articleTemplate
	}
	return fmt.Sprintf(tmpl, p.GeneralContext, p.Context, text)
}
