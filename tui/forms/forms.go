package forms

import (
	"github.com/charmbracelet/huh"
)

// NewConfirmDeleteForm creates a huh confirm form asking the user whether to
// delete the named clip. The result pointer is bound to the confirm field value.
func NewConfirmDeleteForm(title string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete clip?").
				Description("\"" + title + "\" will be removed from the library.").
				Affirmative("Yes, delete").
				Negative("No, keep it").
				Value(confirmed),
		),
	).WithTheme(Theme())
}
