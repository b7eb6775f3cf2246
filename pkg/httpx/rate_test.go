package httpx_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/tg_store/pkg/httpx"
	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want httpx.Rate
	}{
		{"10/minute", httpx.Rate{Limit: 10, Window: time.Minute}},
		{"100 per minute", httpx.Rate{Limit: 100, Window: time.Minute}},
		{" 5/Second ", httpx.Rate{Limit: 5, Window: time.Second}},
		{"200/hours", httpx.Rate{Limit: 200, Window: time.Hour}},
		{"1000 per day", httpx.Rate{Limit: 1000, Window: 24 * time.Hour}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := httpx.ParseRate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRate_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "ten/minute", "0/minute", "-1/minute", "10/week", "10 minute", "10 per"} {
		_, err := httpx.ParseRate(in)
		if !errors.Is(err, httpx.ErrInvalidRate) {
			t.Fatalf("ParseRate(%q): want ErrInvalidRate, got %v", in, err)
		}
	}
}

func TestRate_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10/minute", httpx.MustParseRate("10 per minute").String())
	assert.Equal(t, "3/day", httpx.MustParseRate("3/days").String())
}

func TestRate_EnvconfigDecode(t *testing.T) {
	t.Setenv("RLTEST_ORDER", "7/second")

	var cfg struct {
		Order httpx.Rate `envconfig:"ORDER" default:"10/minute"`
		Other httpx.Rate `envconfig:"OTHER" default:"30 per hour"`
	}
	require.NoError(t, envconfig.Process("RLTEST", &cfg))

	assert.Equal(t, httpx.Rate{Limit: 7, Window: time.Second}, cfg.Order)
	assert.Equal(t, httpx.Rate{Limit: 30, Window: time.Hour}, cfg.Other)
}
