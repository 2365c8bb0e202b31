package llm

import "context"

// Option allows optional generation parameters.
type Option func(*Options)

type Options struct {
	Temperature float64
	Model       string // override default model
	ImageData   []byte // raw image bytes sent alongside the prompt
	ImageMIME   string
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithImage attaches image bytes to the request for vision-capable models.
func WithImage(data []byte, mime string) Option {
	return func(o *Options) {
		o.ImageData = data
		o.ImageMIME = mime
	}
}

// Provider defines the contract for any generative model backend.
type Provider interface {
	// Generate sends a single prompt (plus optional image) to the model and
	// returns the text response.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
