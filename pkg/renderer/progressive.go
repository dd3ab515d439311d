package renderer

import (
	"context"
	"fmt"
	"image"
)

// ProgressiveConfig controls the pass schedule for progressive rendering
type ProgressiveConfig struct {
	InitialSamples int // Per-pixel samples after the first pass (1 recommended)
	MaxPasses      int // Number of passes to spread the budget over
}

// DefaultProgressiveConfig returns the schedule used by the web preview:
// a one-sample first pass, then the remaining budget split over six more
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		InitialSamples: 1,
		MaxPasses:      7,
	}
}

// PassResult delivers the state of the image after a completed pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// Progressive spreads a render over multiple passes, trading a quick
// first image for refinement over time. Each pass raises every pixel to
// a cumulative sample target, so the final pass completes the same
// budget a single-pass render would use.
type Progressive struct {
	renderer *Renderer
	config   ProgressiveConfig
}

// NewProgressive wraps a renderer with a progressive pass schedule
func NewProgressive(renderer *Renderer, config ProgressiveConfig) (*Progressive, error) {
	if config.MaxPasses <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPassCount, config.MaxPasses)
	}
	if config.InitialSamples <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInitialSamples, config.InitialSamples)
	}
	return &Progressive{renderer: renderer, config: config}, nil
}

// samplesForPass returns the cumulative per-pixel sample target after
// the given pass. The first pass stays at InitialSamples for a fast
// preview, later passes split the remaining budget evenly, and the
// final pass absorbs the rounding remainder.
func (p *Progressive) samplesForPass(passNumber int) int {
	total := p.renderer.options.SamplesPerPixel
	if p.config.MaxPasses == 1 || p.config.InitialSamples >= total {
		return total
	}
	if passNumber == 1 {
		return p.config.InitialSamples
	}
	if passNumber >= p.config.MaxPasses {
		return total
	}

	remainingSamples := total - p.config.InitialSamples
	remainingPasses := p.config.MaxPasses - 1
	return p.config.InitialSamples + (passNumber-1)*(remainingSamples/remainingPasses)
}

// RenderProgressive runs the pass schedule, invoking callback after each
// completed pass with the refined image so far. Rendering stops early
// when the context is cancelled, the callback returns an error, or the
// sample budget is already met.
func (p *Progressive) RenderProgressive(ctx context.Context, callback func(PassResult) error) error {
	r := p.renderer
	r.workerPool.Start()
	defer r.workerPool.Stop()

	total := r.options.SamplesPerPixel
	for pass := 1; pass <= p.config.MaxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		target := p.samplesForPass(pass)
		stats, err := r.renderPass(ctx, target)
		if err != nil {
			return err
		}

		isLast := pass == p.config.MaxPasses || target >= total
		if callback != nil {
			result := PassResult{
				PassNumber: pass,
				Image:      r.frame.ToImage(),
				Stats:      stats,
				IsLast:     isLast,
			}
			if err := callback(result); err != nil {
				return err
			}
		}

		if isLast {
			break
		}
	}
	return nil
}
