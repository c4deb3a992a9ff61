package plex

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const albumDetailXML = `<MediaContainer size="1">
  <Directory ratingKey="5" key="/library/metadata/5/children" guid="plex://album/5d07cd8e403c640290f180f9" parentRatingKey="1" parentKey="/library/metadata/1" parentTitle="Jason Mraz" type="album" title="We Sing. We Dance. We Steal Things." year="2008" originallyAvailableAt="2008-05-13" leafCount="12" viewedLeafCount="3" studio="Atlantic Records">
    <Genre id="7" tag="Pop"/>
    <Format id="20" tag="Studio"/>
    <Subformat id="21" tag="Singer-songwriter"/>
  </Directory>
</MediaContainer>`

func fetchAlbumDetail(t *testing.T, extra map[string]string) *Album {
	t.Helper()
	routes := map[string]string{"/library/metadata/5": albumDetailXML}
	for path, body := range extra {
		routes[path] = body
	}
	c := newTestClient(t, xmlHandler(routes))
	e, err := c.FetchItem(context.Background(), "/library/metadata/5", KindDefault, nil)
	require.NoError(t, err)
	require.NotNil(t, e)
	album, ok := e.(*Album)
	require.True(t, ok)
	return album
}

func TestAlbumLoad(t *testing.T) {
	album := fetchAlbumDetail(t, nil)

	assert.Equal(t, "/library/metadata/5", album.Key)
	assert.Equal(t, "We Sing. We Dance. We Steal Things.", album.Title)
	assert.Equal(t, 2008, album.Year)
	assert.Equal(t, time.Date(2008, 5, 13, 0, 0, 0, 0, time.UTC), album.OriginallyAvailableAt)
	assert.Equal(t, 12, album.LeafCount)
	assert.Equal(t, "Jason Mraz", album.ParentTitle)
	assert.True(t, album.IsFull())

	require.Len(t, album.Formats(), 1)
	require.Len(t, album.Subformats(), 1)
	assert.Equal(t, "Singer-songwriter", album.Subformats()[0].Tag)
}

func TestAlbumStudioAlreadyPresent(t *testing.T) {
	album := fetchAlbumDetail(t, nil)

	studio, err := album.Studio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Atlantic Records", studio)
}

func TestAlbumTrackByIndexScopesToAlbum(t *testing.T) {
	album := fetchAlbumDetail(t, map[string]string{
		"/library/metadata/5/children": `<MediaContainer size="2">
  <Track ratingKey="30" key="/library/metadata/30" parentTitle="We Sing. We Dance. We Steal Things." type="track" title="Make It Mine" index="1"/>
  <Track ratingKey="31" key="/library/metadata/31" parentTitle="We Sing. We Dance. We Steal Things." type="track" title="Lucky" index="3"/>
</MediaContainer>`,
	})

	track, err := album.Track(context.Background(), TrackOptions{Index: 3})
	require.NoError(t, err)
	require.NotNil(t, track)
	assert.Equal(t, "Lucky", track.Title)

	_, err = album.Track(context.Background(), TrackOptions{})
	require.ErrorIs(t, err, ErrMissingArgument)
}

func TestAlbumArtistNavigation(t *testing.T) {
	album := fetchAlbumDetail(t, map[string]string{
		"/library/metadata/1": artistXML,
	})

	artist, err := album.Artist(context.Background())
	require.NoError(t, err)
	require.NotNil(t, artist)
	assert.Equal(t, "Jason Mraz", artist.Title)
}

func TestAlbumMetadataDirectory(t *testing.T) {
	album := fetchAlbumDetail(t, nil)
	assert.Equal(t, "Metadata/Albums/5/d07cd8e403c640290f180f9.bundle", album.MetadataDirectory())
}
