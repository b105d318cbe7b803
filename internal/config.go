package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	HTTPPort             int           `env:"HTTP_PORT,default=8080" validate:"min=1,max=65535"`
	GRPCPort             int           `env:"GRPC_PORT,default=9090" validate:"min=1,max=65535"`
	DebugPort            int           `env:"DEBUG_PORT,default=8081"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	JWTSecret            string        `env:"JWT_SECRET,required=true" validate:"min=16"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=24h" validate:"gt=0"`
	RequireToken         bool          `env:"REQUIRE_TOKEN,default=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64" validate:"min=1"`
	MaxFrameBytes        int           `env:"MAX_FRAME_BYTES,default=65536" validate:"min=512"`
	WriteTimeout         time.Duration `env:"WRITE_TIMEOUT,default=10s" validate:"gt=0"`
	PongTimeout          time.Duration `env:"PONG_TIMEOUT,default=60s" validate:"gt=0"`
	AnonymousTimeout     time.Duration `env:"ANONYMOUS_TIMEOUT,default=30s" validate:"gt=0"`
	ReaperInterval       time.Duration `env:"REAPER_INTERVAL,default=5s" validate:"gt=0"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=10s" validate:"gt=0"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
	LimitMessages        *int          `env:"LIMIT_MESSAGES"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	OtelEndpoint         string        `env:"OTEL_ENDPOINT"`
	OtelInsecure         bool          `env:"OTEL_INSECURE,default=true"`
	OtelSamplingRate     float64       `env:"OTEL_SAMPLING_RATE,default=1" validate:"min=0,max=1"`
}

// Validate checks the ranges go-env cannot express.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.PongTimeout <= c.WriteTimeout {
		return fmt.Errorf("invalid configuration: PONG_TIMEOUT (%s) must exceed WRITE_TIMEOUT (%s)", c.PongTimeout, c.WriteTimeout)
	}
	return nil
}

func (c Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}

func (c Config) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GRPCPort)
}

// CensoredWordList splits the comma separated CENSORED_WORDS, blanks dropped.
func (c Config) CensoredWordList() []string {
	words := make([]string, 0)
	for _, word := range strings.Split(c.CensoredWords, ",") {
		if word = strings.TrimSpace(word); word != "" {
			words = append(words, word)
		}
	}
	return words
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
