package plex

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackXML = `<MediaContainer size="1">
  <Track ratingKey="31" key="/library/metadata/31" parentRatingKey="5" parentKey="/library/metadata/5" parentGuid="plex://album/5d07cd8e403c640290f180f9" parentTitle="We Sing" grandparentRatingKey="1" grandparentKey="/library/metadata/1" grandparentTitle="Jason Mraz" librarySectionID="3" librarySectionKey="/library/sections/3" type="track" title="Lucky" index="3" parentIndex="1" duration="189000" ratingCount="2048" skipCount="4" viewOffset="32000" musicAnalysisVersion="1">
    <Media id="70" duration="189000" bitrate="320" audioChannels="2" audioCodec="mp3" container="mp3">
      <Part id="71" key="/library/parts/71/file.mp3" duration="189000" file="/music/Jason Mraz/We Sing/03 - Lucky.mp3" size="7558000" container="mp3"/>
    </Media>
  </Track>
</MediaContainer>`

func fetchLuckyTrack(t *testing.T, extra map[string]string) *Track {
	t.Helper()
	routes := map[string]string{"/library/metadata/31": trackXML}
	for path, body := range extra {
		routes[path] = body
	}
	c := newTestClient(t, xmlHandler(routes))
	e, err := c.FetchItem(context.Background(), "/library/metadata/31", KindDefault, nil)
	require.NoError(t, err)
	require.NotNil(t, e)
	track, ok := e.(*Track)
	require.True(t, ok)
	return track
}

func TestTrackLoad(t *testing.T) {
	track := fetchLuckyTrack(t, nil)

	assert.Equal(t, "Lucky", track.Title)
	assert.Equal(t, 3, track.TrackNumber())
	assert.Equal(t, 189000, track.Duration)
	assert.Equal(t, 2048, track.RatingCount)
	assert.Equal(t, "We Sing", track.ParentTitle)
	assert.Equal(t, "Jason Mraz", track.GrandparentTitle)
	assert.True(t, track.HasSonicAnalysis())
	assert.True(t, track.IsFull())
}

func TestTrackLocations(t *testing.T) {
	track := fetchLuckyTrack(t, nil)

	media := track.Media()
	require.Len(t, media, 1)
	require.Len(t, media[0].Parts, 1)
	assert.Equal(t, "mp3", media[0].AudioCodec)

	assert.Equal(t, []string{"/music/Jason Mraz/We Sing/03 - Lucky.mp3"}, track.Locations())
}

func TestTrackMetadataDirectory(t *testing.T) {
	track := fetchLuckyTrack(t, nil)

	// a track's bundle hangs off its album's guid
	assert.Equal(t, "Metadata/Albums/5/d07cd8e403c640290f180f9.bundle", track.MetadataDirectory())
}

func TestTrackAlbumAndArtistNavigation(t *testing.T) {
	track := fetchLuckyTrack(t, map[string]string{
		"/library/metadata/5": albumFullXML,
		"/library/metadata/1": artistXML,
	})
	ctx := context.Background()

	album, err := track.Album(ctx)
	require.NoError(t, err)
	require.NotNil(t, album)
	assert.Equal(t, "We Sing", album.Title)

	artist, err := track.Artist(ctx)
	require.NoError(t, err)
	require.NotNil(t, artist)
	assert.Equal(t, "Jason Mraz", artist.Title)
}

func TestSonicallySimilarQuery(t *testing.T) {
	var rawQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/library/metadata/31", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(trackXML))
	})
	mux.HandleFunc("/library/metadata/31/nearest", func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(leavesXML))
	})
	c := newTestClient(t, mux)
	e, err := c.FetchItem(context.Background(), "/library/metadata/31", KindDefault, nil)
	require.NoError(t, err)
	track := e.(*Track)

	similar, err := track.SonicallySimilar(context.Background(), SimilarOptions{Limit: 50, MaxDistance: 0.25})
	require.NoError(t, err)
	require.Len(t, similar, 2)

	// limit before maxDistance, the float in its shortest form
	assert.Equal(t, "limit=50&maxDistance=0.25", rawQuery)

	// polymorphic result: similar items of a track are tracks
	_, ok := similar[0].(*Track)
	assert.True(t, ok)
}

func TestSonicallySimilarDefaults(t *testing.T) {
	var rawQuery string
	var hitPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/library/metadata/31", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(trackXML))
	})
	mux.HandleFunc("/library/metadata/31/nearest", func(w http.ResponseWriter, r *http.Request) {
		hitPath = r.URL.Path
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`<MediaContainer size="0"/>`))
	})
	c := newTestClient(t, mux)
	e, err := c.FetchItem(context.Background(), "/library/metadata/31", KindDefault, nil)
	require.NoError(t, err)
	track := e.(*Track)

	_, err = track.SonicallySimilar(context.Background(), SimilarOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/library/metadata/31/nearest", hitPath)
	assert.Empty(t, rawQuery)
}

func TestSonicAdventure(t *testing.T) {
	var hitPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/library/metadata/31", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(trackXML))
	})
	mux.HandleFunc("/library/sections/3/computePath", func(w http.ResponseWriter, r *http.Request) {
		hitPath = r.URL.Path + "?" + r.URL.RawQuery
		_, _ = w.Write([]byte(leavesXML))
	})
	c := newTestClient(t, mux)
	ctx := context.Background()
	e, err := c.FetchItem(ctx, "/library/metadata/31", KindDefault, nil)
	require.NoError(t, err)
	from := e.(*Track)
	e, err = c.FetchItem(ctx, "/library/metadata/31", KindDefault, nil)
	require.NoError(t, err)
	to := e.(*Track)
	to.RatingKey = 42

	path, err := from.SonicAdventure(ctx, to)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "/library/sections/3/computePath?startID=31&endID=42", hitPath)
}

func TestTrackDownload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/library/metadata/31", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(trackXML))
	})
	mux.HandleFunc("/library/parts/71/file.mp3", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("download"))
		_, _ = w.Write([]byte("audio-bytes"))
	})
	c := newTestClient(t, mux)
	e, err := c.FetchItem(context.Background(), "/library/metadata/31", KindDefault, nil)
	require.NoError(t, err)
	track := e.(*Track)

	dir := t.TempDir()
	paths, err := track.Download(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	want := filepath.Join(dir, "Jason Mraz - We Sing - 03 - Lucky.mp3")
	assert.Equal(t, want, paths[0])
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))
}
