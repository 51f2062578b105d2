package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/showdown/internal/gameid"
)

// HandOption configures a Hand during creation.
type HandOption func(*handConfig)

type handConfig struct {
	id     string
	number int
	logger *log.Logger
	bus    *EventBus
	clock  quartz.Clock
}

func defaultHandConfig() handConfig {
	return handConfig{
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}
}

// WithHandID sets the hand identifier. By default a fresh id is generated.
func WithHandID(id string) HandOption {
	return func(c *handConfig) {
		c.id = id
	}
}

// WithHandNumber sets the hand's sequence number at its table.
func WithHandNumber(n int) HandOption {
	return func(c *handConfig) {
		c.number = n
	}
}

// WithLogger sets the logger used for action and settlement logging.
func WithLogger(logger *log.Logger) HandOption {
	return func(c *handConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEventBus publishes hand events on bus.
func WithEventBus(bus *EventBus) HandOption {
	return func(c *handConfig) {
		c.bus = bus
	}
}

// WithClock sets the clock used to timestamp events and records.
func WithClock(clock quartz.Clock) HandOption {
	return func(c *handConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func (c *handConfig) resolveID() string {
	if c.id == "" {
		c.id = gameid.Generate()
	}
	return c.id
}
