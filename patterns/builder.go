package patterns

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ServerConfig is the product: a fully validated connection configuration.
type ServerConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	TLS            bool
	ConnectTimeout time.Duration
}

// ServerConfigBuilder accumulates fields via chained calls and validates the
// required ones in Build.
type ServerConfigBuilder struct {
	host     string
	port     int
	username string
	password string
	tls      bool
	timeout  time.Duration

	hostSet    bool
	portSet    bool
	userSet    bool
	passSet    bool
	timeoutSet bool
}

// defaultConnectTimeout applies when the caller never sets one.
const defaultConnectTimeout = 30 * time.Second

// NewServerConfigBuilder returns an empty builder.
func NewServerConfigBuilder() *ServerConfigBuilder {
	return &ServerConfigBuilder{}
}

func (b *ServerConfigBuilder) Host(host string) *ServerConfigBuilder {
	b.host = host
	b.hostSet = true
	return b
}

func (b *ServerConfigBuilder) Port(port int) *ServerConfigBuilder {
	b.port = port
	b.portSet = true
	return b
}

func (b *ServerConfigBuilder) Username(username string) *ServerConfigBuilder {
	b.username = username
	b.userSet = true
	return b
}

func (b *ServerConfigBuilder) Password(password string) *ServerConfigBuilder {
	b.password = password
	b.passSet = true
	return b
}

func (b *ServerConfigBuilder) TLS(tls bool) *ServerConfigBuilder {
	b.tls = tls
	return b
}

func (b *ServerConfigBuilder) ConnectTimeout(d time.Duration) *ServerConfigBuilder {
	b.timeout = d
	b.timeoutSet = true
	return b
}

// Build validates required fields and returns the finished config.
// Host, port, username and password are required; the connect timeout
// defaults to 30s and TLS to false.
func (b *ServerConfigBuilder) Build() (ServerConfig, error) {
	switch {
	case !b.hostSet:
		return ServerConfig{}, errors.New("host is required")
	case !b.portSet:
		return ServerConfig{}, errors.New("port is required")
	case !b.userSet:
		return ServerConfig{}, errors.New("username is required")
	case !b.passSet:
		return ServerConfig{}, errors.New("password is required")
	}

	timeout := b.timeout
	if !b.timeoutSet {
		timeout = defaultConnectTimeout
	}

	return ServerConfig{
		Host:           b.host,
		Port:           b.port,
		Username:       b.username,
		Password:       b.password,
		TLS:            b.tls,
		ConnectTimeout: timeout,
	}, nil
}

// DemoBuilder walks through constructing server configurations step by step.
func DemoBuilder(w io.Writer) {
	banner(w, "🏗️  BUILDER PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern constructs complex objects step by step.")
	fmt.Fprintln(w, "Go benefit: chained pointer receivers, validation at Build time.")

	section(w, "Example 1: Building a valid server configuration")
	config, err := NewServerConfigBuilder().
		Host("localhost").
		Port(5432).
		Username("admin").
		Password("secret").
		TLS(true).
		ConnectTimeout(60 * time.Second).
		Build()
	if err != nil {
		fmt.Fprintf(w, "❌ Error: %v\n", err)
	} else {
		fmt.Fprintf(w, "✅ Configuration built: %+v\n", config)
	}

	section(w, "Example 2: Building with missing required fields")
	_, err = NewServerConfigBuilder().
		Host("localhost").
		Port(5432).
		Build()
	if err != nil {
		fmt.Fprintf(w, "❌ Error: %v\n", err)
	} else {
		fmt.Fprintln(w, "✅ Config built successfully")
	}

	section(w, "Example 3: Builder with default values")
	config, _ = NewServerConfigBuilder().
		Host("production.example.com").
		Port(3306).
		Username("dbuser").
		Password("secure123").
		Build()
	fmt.Fprintf(w, "✅ Configuration with defaults: %+v\n", config)

	points(w,
		"Method chaining via pointer receivers",
		"Validation centralized in Build with error returns",
		"Optional fields fall back to defaults",
		"Product struct stays immutable after construction",
	)
}
