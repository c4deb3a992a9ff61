package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBundleHashPlexGuid(t *testing.T) {
	assert.Equal(t, "5d07cd8e403c640290f180f9",
		BundleHash("plex://album/5d07cd8e403c640290f180f9"))
	assert.Equal(t, "5d07bcb0403c64029053ac4c",
		BundleHash("plex://artist/5d07bcb0403c64029053ac4c"))
}

func TestBundleHashLegacyGuid(t *testing.T) {
	guid := "com.plexapp.agents.lastfm://Jason%20Mraz?lang=en"
	sum := sha1.Sum([]byte(guid))
	want := hex.EncodeToString(sum[:])

	got := BundleHash(guid)
	assert.Equal(t, want, got)
	assert.Len(t, got, 40)

	// deterministic across calls
	assert.Equal(t, got, BundleHash(guid))
}

func TestBundlePath(t *testing.T) {
	assert.Equal(t, "Metadata/Albums/5/d07cd8e403c640290f180f9.bundle",
		BundlePath("Albums", "plex://album/5d07cd8e403c640290f180f9"))
	assert.Equal(t, "Metadata/Artists/5/d07bcb0403c64029053ac4c.bundle",
		BundlePath("Artists", "plex://artist/5d07bcb0403c64029053ac4c"))
	assert.Equal(t, "", BundlePath("Albums", ""))
}
