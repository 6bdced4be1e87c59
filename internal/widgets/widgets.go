// Package widgets renders a family of UI controls created through a platform factory.
package widgets

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupportedPlatform is returned when no factory exists for a platform.
var ErrUnsupportedPlatform = errors.New("unsupported operating system")

// Button is a clickable control.
type Button interface {
	Paint(w io.Writer) error
}

// Checkbox is a toggle control.
type Checkbox interface {
	Paint(w io.Writer) error
}

// Factory creates a matching family of controls.
type Factory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
}

// Platform names accepted by ForPlatform.
const (
	PlatformWindows = "windows"
	PlatformMac     = "mac"
)

// ForPlatform returns the factory for a platform name, ignoring case.
func ForPlatform(name string) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PlatformWindows:
		return WindowsFactory{}, nil
	case PlatformMac:
		return MacFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, name)
	}
}

// style paints controls in one platform look.
type style string

func (s style) paint(w io.Writer, control string) error {
	_, err := fmt.Fprintf(w, "Rendering a %s in %s style.\n", control, s)
	return err
}

type windowsButton struct{}

func (windowsButton) Paint(w io.Writer) error { return style("Windows").paint(w, "button") }

type windowsCheckbox struct{}

func (windowsCheckbox) Paint(w io.Writer) error { return style("Windows").paint(w, "checkbox") }

type macButton struct{}

func (macButton) Paint(w io.Writer) error { return style("Mac").paint(w, "button") }

type macCheckbox struct{}

func (macCheckbox) Paint(w io.Writer) error { return style("Mac").paint(w, "checkbox") }

// WindowsFactory creates Windows-style controls.
type WindowsFactory struct{}

func (WindowsFactory) CreateButton() Button     { return windowsButton{} }
func (WindowsFactory) CreateCheckbox() Checkbox { return windowsCheckbox{} }

// MacFactory creates Mac-style controls.
type MacFactory struct{}

func (MacFactory) CreateButton() Button     { return macButton{} }
func (MacFactory) CreateCheckbox() Checkbox { return macCheckbox{} }

// Application holds controls built by a single factory and never names their concrete types.
type Application struct {
	button   Button
	checkbox Checkbox
}

// NewApplication builds the application's controls with f.
func NewApplication(f Factory) *Application {
	return &Application{
		button:   f.CreateButton(),
		checkbox: f.CreateCheckbox(),
	}
}

// Render paints every control to w.
func (a *Application) Render(w io.Writer) error {
	if err := a.button.Paint(w); err != nil {
		return err
	}
	return a.checkbox.Paint(w)
}
