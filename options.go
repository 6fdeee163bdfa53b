package mdhtml

// RenderOptions holds options for markdown rendering.
type RenderOptions struct {
	Config *RenderConfig
	// HTMLInput converts HTML input to Markdown before rendering.
	HTMLInput bool
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *RenderOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// WithTableClass sets the class attribute of rendered tables.
func WithTableClass(class string) Option {
	return func(opts *RenderOptions) {
		opts.Config = copyConfig(opts.Config)
		opts.Config.TableClass = class
	}
}

// WithSanitize sets whether rendered markup is passed through the allow-list
// sanitizer.
func WithSanitize(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.Config = copyConfig(opts.Config)
		opts.Config.Sanitize = enable
	}
}

// WithHTMLInput sets whether the input is HTML that should be normalised to
// Markdown first.
func WithHTMLInput(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.HTMLInput = enable
	}
}

// copyConfig keeps option changes off the shared default config.
func copyConfig(config *RenderConfig) *RenderConfig {
	c := *config
	return &c
}

// defaultRenderOptions returns the default rendering options.
func defaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		HTMLInput: false,
		Config:    DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
