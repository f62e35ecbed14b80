package patterns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServerConfigBuilder_AllFieldsSet(t *testing.T) {
	got, err := NewServerConfigBuilder().
		Host("localhost").
		Port(5432).
		Username("admin").
		Password("secret").
		TLS(true).
		ConnectTimeout(60 * time.Second).
		Build()

	assert.NoError(t, err)
	want := ServerConfig{
		Host:           "localhost",
		Port:           5432,
		Username:       "admin",
		Password:       "secret",
		TLS:            true,
		ConnectTimeout: 60 * time.Second,
	}
	assert.Equal(t, want, got)
}

func TestServerConfigBuilder_MissingRequiredField(t *testing.T) {
	// GIVEN a builder with only host and port
	// WHEN Build is called
	_, err := NewServerConfigBuilder().
		Host("localhost").
		Port(5432).
		Build()

	// THEN the first missing required field is reported
	assert.EqualError(t, err, "username is required")
}

func TestServerConfigBuilder_MissingHostReportedFirst(t *testing.T) {
	_, err := NewServerConfigBuilder().Build()
	assert.EqualError(t, err, "host is required")
}

func TestServerConfigBuilder_Defaults(t *testing.T) {
	got, err := NewServerConfigBuilder().
		Host("production.example.com").
		Port(3306).
		Username("dbuser").
		Password("secure123").
		Build()

	assert.NoError(t, err)
	assert.False(t, got.TLS, "TLS must default to off")
	assert.Equal(t, 30*time.Second, got.ConnectTimeout, "connect timeout must default to 30s")
}
