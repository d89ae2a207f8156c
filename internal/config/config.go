package config

// Config represents the complete mermaid-corpus configuration.
// It can be loaded from .mermaid-corpus.yaml with environment variable
// overrides.
type Config struct {
	Corpus CorpusConfig `yaml:"corpus" mapstructure:"corpus"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Verify VerifyConfig `yaml:"verify" mapstructure:"verify"`
}

// CorpusConfig defines where the source corpus lives and which paths to
// skip while scanning it.
type CorpusConfig struct {
	Dir    string   `yaml:"dir" mapstructure:"dir"`       // root of the tree to scan
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to skip
}

// OutputConfig defines where extracted samples are written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// VerifyConfig configures the sample verification run.
type VerifyConfig struct {
	SampleSize int `yaml:"sample_size" mapstructure:"sample_size"` // random samples to check
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Dir: "mermaid",
			Ignore: []string{
				"node_modules/**",
				"**/node_modules/**",
				".git/**",
				"**/.git/**",
				"dist/**",
				"**/dist/**",
				"build/**",
				"**/build/**",
			},
		},
		Output: OutputConfig{
			Dir: "mermaid-samples",
		},
		Verify: VerifyConfig{
			SampleSize: 50,
		},
	}
}
