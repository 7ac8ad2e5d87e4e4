// Package assembly composes the present sections of a DocumentData into one
// document.
package assembly

import (
	"fmt"

	"github.com/Affiliat0r/Vertaler/internal/document"
	"github.com/Affiliat0r/Vertaler/internal/sections"
)

// Engine assembles documents with a fixed style configuration.
type Engine struct {
	cfg document.Config
}

// New returns an Engine that renders with cfg.
func New(cfg document.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating assembly engine: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the style configuration the engine renders with.
func (e *Engine) Config() document.Config {
	return e.cfg
}

// Compose returns the blocks of every present section in canonical order,
// with a page break between consecutive sections. Data with no present
// section yields no blocks.
func (e *Engine) Compose(data sections.DocumentData) []document.Block {
	var blocks []document.Block
	for _, key := range data.PresentKeys() {
		desc, ok := sections.Lookup(key)
		if !ok {
			continue
		}
		if len(blocks) > 0 {
			blocks = append(blocks, document.PageBreak())
		}
		blocks = append(blocks, desc.Generate(data[key])...)
	}
	return blocks
}

// Assemble composes data and serializes it to DOCX.
func (e *Engine) Assemble(data sections.DocumentData) ([]byte, error) {
	out, err := document.Render(e.cfg, e.Compose(data))
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return out, nil
}
