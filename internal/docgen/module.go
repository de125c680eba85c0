package docgen

import (
	"go.uber.org/fx"

	"github.com/nafru/exportdesk/internal/config"
)

// Module provides the PDF renderer configured with the company letterhead.
var Module = fx.Provide(newRenderer)

type rendererParams struct {
	fx.In

	Config *config.Config
}

func newRenderer(p rendererParams) *Renderer {
	return NewRenderer(CompanyInfo{
		Name:     p.Config.CompanyName,
		Tagline:  p.Config.CompanyTagline,
		Location: p.Config.CompanyLocation,
	})
}
