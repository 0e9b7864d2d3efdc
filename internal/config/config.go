package config

// Config holds the full configuration for one run. It is built once from
// the command line and never mutated afterwards.
type Config struct {
	VideoRef   string   // raw positional argument: URL or bare ID
	Languages  []string // preferred language codes in priority order
	Translate  string   // translation target language code, empty for none
	OutputPath string   // output file path, empty for stdout
	JSON       bool     // emit JSON instead of plain text
	Timestamps bool     // prefix text lines with timestamps (no-op with JSON)
}

// Default returns the default configuration: English transcript, plain
// text, written to stdout.
func Default() *Config {
	return &Config{
		Languages: []string{"en"},
	}
}
