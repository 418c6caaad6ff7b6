/*
File: logger_test.go
Description: Tests for the netglass logging system. Covers logger creation,
config validation, file output through the rotating writer, and the
engine-specific logging helpers.
*/

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLoggerDefaults verifies a nil config produces a working logger
func TestNewLoggerDefaults(t *testing.T) {
	logger, err := NewLogger(nil)
	require.NoError(t, err)
	defer logger.Close()

	assert.NotNil(t, logger.GetLogger())
}

// TestLoggerConfigValidate covers the config checks
func TestLoggerConfigValidate(t *testing.T) {
	valid := &LoggerConfig{
		Level:      LogLevelDebug,
		Format:     LogFormatJSON,
		OutputDir:  "",
		MaxSizeMB:  10,
		MaxBackups: 2,
	}
	assert.NoError(t, valid.Validate())

	badFormat := *valid
	badFormat.Format = "xml"
	assert.Error(t, badFormat.Validate())

	badLevel := *valid
	badLevel.Level = "verbose"
	assert.Error(t, badLevel.Validate())

	badSize := *valid
	badSize.MaxSizeMB = 0
	assert.Error(t, badSize.Validate())
}

// TestLoggerFileOutput verifies log lines land in the rotated file
func TestLoggerFileOutput(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(&LoggerConfig{
		Level:      LogLevelDebug,
		Format:     LogFormatJSON,
		OutputDir:  dir,
		MaxSizeMB:  10,
		MaxBackups: 2,
		Timestamp:  true,
	})
	require.NoError(t, err)

	logger.LogCatalogLoad("/etc/netglass/netglass.yaml", 3, 2)
	logger.LogConstruction("req-1", "edge1-nyc", "ping", "scrape", []string{"ping 192.0.2.1 source 203.0.113.1"})
	logger.LogResolutionFailure("req-2", "edge1-nyc", "traceroute", assert.AnError)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(dir, "netglass.log"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Device catalog loaded")
	assert.Contains(t, content, "Query construction failed")
	assert.Contains(t, content, "edge1-nyc")
}

// TestCustomFormatterDeterministicFields verifies sorted field output
func TestCustomFormatterDeterministicFields(t *testing.T) {
	f := &CustomFormatter{Timestamp: false, Colors: false}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "Constructed query",
		Data: logrus.Fields{
			"vrf":    "default",
			"device": "edge1-nyc",
			"target": "192.0.2.1",
		},
	}

	first, err := f.Format(entry)
	require.NoError(t, err)
	second, err := f.Format(entry)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), "device=edge1-nyc target=192.0.2.1 vrf=default")
}
