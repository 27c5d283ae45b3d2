package figsvg

import (
	"fmt"
	"os"

	"github.com/okfig/okfig/figscene"
)

// Backend names an output format for Save.
type Backend string

// BackendSVG is the only supported backend.
const BackendSVG Backend = "svg"

// Save renders the figure to a file. The backend is checked before the
// file is created: an unknown backend leaves the filesystem untouched.
func Save(fig *figscene.Figure, path string, backend Backend) error {
	if backend != BackendSVG {
		return &figscene.ConfigurationError{Reason: fmt.Sprintf("unknown save backend %q", backend)}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving figure: %w", err)
	}
	if err := Render(fig, f); err != nil {
		f.Close()
		return fmt.Errorf("saving figure: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving figure: %w", err)
	}
	return nil
}
