package renderer

import (
	"github.com/unrolled/render"
)

// New returns a JSON renderer. Indented output is for local debugging only.
func New(indent bool) *render.Render {
	return render.New(render.Options{
		IndentJSON:   indent,
		UnEscapeHTML: true,
	})
}
