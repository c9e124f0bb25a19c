package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Dialogs are the native pop-ups the game blocks on.
type Dialogs interface {
	// SaveFile asks for a destination path; "" means the user cancelled.
	SaveFile(title, filename string) (string, error)
	Error(msg string)
}

type zenityDialogs struct{}

func NewDialogs() Dialogs {
	return zenityDialogs{}
}

func (zenityDialogs) SaveFile(title, filename string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title(title),
		zenity.Filename(filename),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "CSV",
			Patterns: []string{"*.csv"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

func (zenityDialogs) Error(msg string) {
	_ = zenity.Error(msg, zenity.Title(windowTitle))
}
