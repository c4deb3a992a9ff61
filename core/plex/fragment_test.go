package plex

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<MediaContainer size="1">
  <Directory ratingKey="1" key="/library/metadata/1" type="artist" title="Jason Mraz" addedAt="1577836800" userRating="8.5" viewCount="oops">
    <Genre id="7" tag="Pop"/>
    <Genre id="8" tag="Folk Rock"/>
  </Directory>
</MediaContainer>`

func TestParseContainer(t *testing.T) {
	root, err := ParseContainer(strings.NewReader(containerXML))
	require.NoError(t, err)

	assert.Equal(t, "MediaContainer", root.Tag)
	require.Len(t, root.Children, 1)

	dir := root.Children[0]
	assert.Equal(t, "Directory", dir.Tag)
	assert.Equal(t, "Jason Mraz", dir.Attr("title"))
	assert.Len(t, dir.find("Genre"), 2)
	assert.Empty(t, dir.find("Style"))
}

func TestParseContainerEmptyBody(t *testing.T) {
	_, err := ParseContainer(strings.NewReader(""))
	assert.Error(t, err)
}

func TestAttrCoercion(t *testing.T) {
	root, err := ParseContainer(strings.NewReader(containerXML))
	require.NoError(t, err)
	dir := root.Children[0]

	assert.Equal(t, 1, attrInt(dir, "ratingKey"))
	assert.Equal(t, 8.5, attrFloat(dir, "userRating"))
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), attrTime(dir, "addedAt", ""))

	// malformed and missing values degrade to zero values, never errors
	assert.Equal(t, 0, attrInt(dir, "viewCount"))
	assert.Equal(t, 0, attrInt(dir, "nonexistent"))
	assert.Equal(t, 0.0, attrFloat(dir, "title"))
	assert.True(t, attrTime(dir, "nonexistent", "").IsZero())
	assert.True(t, attrTime(dir, "title", "2006-01-02").IsZero())
}

func TestAttrTimeLayout(t *testing.T) {
	root, err := ParseContainer(strings.NewReader(
		`<MediaContainer><Directory originallyAvailableAt="2008-05-13"/></MediaContainer>`))
	require.NoError(t, err)

	got := attrTime(root.Children[0], "originallyAvailableAt", "2006-01-02")
	assert.Equal(t, time.Date(2008, 5, 13, 0, 0, 0, 0, time.UTC), got)
}
