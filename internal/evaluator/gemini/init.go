package gemini

import "prepmate/internal/evaluator"

// Register Gemini provider on package import
func init() {
	evaluator.RegisterProvider("gemini", func() (evaluator.Provider, error) {
		config, err := NewConfig()
		if err != nil {
			return nil, err
		}
		return NewClient(config)
	})
}
