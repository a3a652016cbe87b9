package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivity(t *testing.T) {
	for in, want := range map[string]Activity{
		"tennis":          Tennis,
		"beachvolleyball": BeachVolleyball,
		"pickleball":      Pickleball,
	} {
		got, err := ParseActivity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	_, err := ParseActivity("curling")
	assert.Error(t, err)
}

func TestActivityCodes(t *testing.T) {
	assert.Equal(t, 1, Tennis.Code())
	assert.Equal(t, 2, BeachVolleyball.Code())
	assert.Equal(t, 3, Pickleball.Code())
}

func TestActivityStartPages(t *testing.T) {
	// The site starts tennis pagination at 2.
	assert.Equal(t, 2, Tennis.StartPage())
	assert.Equal(t, 1, BeachVolleyball.StartPage())
	assert.Equal(t, 1, Pickleball.StartPage())
}

func TestActivityScrapable(t *testing.T) {
	assert.NoError(t, Tennis.Scrapable())
	assert.NoError(t, BeachVolleyball.Scrapable())
	assert.Error(t, Pickleball.Scrapable())
}
