package config

const (
	defaultLogLevel  = "info"
	defaultLogOutput = OutputStderr
	defaultLogColor  = "auto"

	defaultConfigLocation = "~/.config/logge/config.toml"
	projectConfigFileName = "logge.toml"
	envLevel              = "LOGGE_LEVEL"
	envOutput             = "LOGGE_OUTPUT"
	envNoColor            = "NO_COLOR"
)

// Output keywords that select a standard stream instead of a file.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Output: defaultLogOutput,
			Color:  defaultLogColor,
		},
	}
}
