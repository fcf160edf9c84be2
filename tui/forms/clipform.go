// Package forms provides huh-based form components for the TUI.
package forms

import (
	"fmt"
	"net/url"

	"github.com/charmbracelet/huh"
)

// ClipFormResult holds the data returned by a completed clip form.
type ClipFormResult struct {
	VideoURL  string
	Title     string
	ShowTitle string
	Emotion   string
	Category  string
}

// HasData returns true if any field in the clip form result has a non-empty value.
func (r *ClipFormResult) HasData() bool {
	return r.VideoURL != "" || r.Title != "" || r.ShowTitle != ""
}

// NewClipForm creates a huh form for starting a new clip.
// The emotion and category options come from the configured tag lists.
// The result pointer is bound to the form fields and will be populated on submit.
// Fields may be pre-filled (for example from a source metadata lookup) before
// the form is shown.
func NewClipForm(emotions, categories []string, result *ClipFormResult) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("New Clip"),

			huh.NewInput().
				Title("Source URL").
				Description("Direct link to the source video").
				Value(&result.VideoURL).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("source URL is required")
					}
					u, err := url.Parse(s)
					if err != nil || u.Scheme == "" || u.Host == "" {
						return fmt.Errorf("not a valid URL")
					}
					return nil
				}),

			huh.NewInput().
				Title("Title").
				Description("Required").
				Value(&result.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Show").
				Description("Optional").
				Value(&result.ShowTitle),

			huh.NewSelect[string]().
				Title("Emotion").
				Options(huh.NewOptions(emotions...)...).
				Value(&result.Emotion),

			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(categories...)...).
				Value(&result.Category),
		),
	).WithTheme(Theme())

	return form
}
