package renderer

// ProgramBuilderOption is a functional option for configuring a Program
// during construction.
type ProgramBuilderOption func(*program)

// WithLabel overrides the program label, which defaults to the material's
// type name.
//
// Parameters:
//   - label: the label to use
//
// Returns:
//   - ProgramBuilderOption: functional option to set the label
func WithLabel(label string) ProgramBuilderOption {
	return func(p *program) {
		p.label = label
	}
}

// WithTranslator installs a source translator, replacing the default
// identity pass-through.
//
// Parameters:
//   - t: the translator to install
//
// Returns:
//   - ProgramBuilderOption: functional option to set the translator
func WithTranslator(t Translator) ProgramBuilderOption {
	return func(p *program) {
		p.translate = t
	}
}
