package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"github.com/Rakhulsr/go-logistics/app/utils/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("DB_MAX_RETRIES", "1")
	t.Setenv("TABLES_FILE", "")
	t.Setenv("PRICING_API_URL", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewCommand(&out).Run(context.Background(), append([]string{"logistics"}, args...))
	return out.String(), err
}

func TestSeedAndQuote(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed complete")

	out, err = run(t, "quote", "--from", "110001", "--to", "400001", "--weight", "2.4", "--strategy", "CHEAPEST_FIRST")
	require.NoError(t, err)
	assert.Contains(t, out, "Segment D2C, zone C")
	assert.Contains(t, out, "Ecom Express")
	assert.Contains(t, out, "ecom_express-D2C-SURFACE-C-0")
	assert.Contains(t, out, "excluded Gati")

	out, err = run(t, "quote", "--from", "110001", "--to", "400001", "--weight", "1",
		"--length", "100", "--width", "60", "--height", "40", "--json")
	require.NoError(t, err)

	var res rating.QuoteResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, rating.SegmentB2B, res.Segment)
	assert.Equal(t, "48", res.ChargeableWeightKg.String())
	require.NotNil(t, res.Recommended)
}

func TestQuoteRejectsBadInput(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "seed")
	require.NoError(t, err)

	_, err = run(t, "quote", "--from", "110001", "--to", "400001", "--weight", "heavy")
	assert.ErrorContains(t, err, "invalid --weight")

	_, err = run(t, "quote", "--from", "110001", "--to", "400001", "--weight", "0")
	assert.True(t, validation.IsValidationError(err), "got %v", err)
}

func TestValuateOffline(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "valuate", "--brand", "aquaguard", "--age", "0.5", "--condition", "EXCELLENT", "--offline")
	require.NoError(t, err)
	assert.Contains(t, out, "₹2,000.00")

	out, err = run(t, "valuate", "--brand", "other", "--age", "6", "--condition", "POOR", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"estimated_value": 500}`, out)

	_, err = run(t, "valuate", "--brand", "philips", "--age", "1", "--condition", "GOOD")
	assert.True(t, validation.IsValidationError(err), "got %v", err)
}
