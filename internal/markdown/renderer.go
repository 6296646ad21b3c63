package markdown

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Engine names accepted by New.
const (
	EngineBasic    = "basic"
	EngineGoldmark = "goldmark"
)

// ErrUnknownEngine indicates an unsupported engine name.
var ErrUnknownEngine = errors.New("unknown markdown engine")

// ErrConversion indicates a body could not be rendered.
var ErrConversion = errors.New("markdown conversion failed")

// Renderer converts markdown text to an HTML fragment.
type Renderer interface {
	Render(ctx context.Context, src string) (string, error)
}

// Engines lists the valid engine names.
func Engines() []string {
	return []string{EngineBasic, EngineGoldmark}
}

// New returns the renderer for engine. An empty name selects basic.
func New(engine string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineBasic:
		return Basic{}, nil
	case EngineGoldmark:
		return NewGoldmark(), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownEngine, engine, strings.Join(Engines(), ", "))
	}
}

// Basic is the line-oriented engine backed by RenderBody.
type Basic struct{}

// Compile-time interface check.
var _ Renderer = Basic{}

// Render implements Renderer.
func (Basic) Render(ctx context.Context, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return RenderBody(src), nil
}
