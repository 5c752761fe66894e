package services

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"streamgearhub/cmd/api/clients/wpclient"
)

func newHomeService(t *testing.T, cms *fakeCMS) *HomeService {
	t.Helper()
	srv := httptest.NewServer(cms.handler())
	t.Cleanup(srv.Close)
	client := wpclient.NewWithBaseURLs(srv.URL+"/wp-json/wp/v2", srv.URL+"/wp-json/streamgearhub/v1")
	gear := NewGearService(client)
	return NewHomeService(NewPostService(client, gear), gear, client)
}

func TestHomeCapsSections(t *testing.T) {
	pool := "[" +
		postJSON("a", "Audio", `"[]"`) + "," +
		postJSON("b", "Audio", `"[]"`) + "," +
		postJSON("c", "Audio", `"[]"`) + "," +
		postJSON("d", "Audio", `"[]"`) +
		"]"
	cms := &fakeCMS{
		posts: pool,
		gearFeed: `[
			{"title": "P1"}, {"title": "P2"}, {"title": "P3"}, {"title": "P4"}
		]`,
	}
	svc := newHomeService(t, cms)

	home := svc.Home(context.Background())
	assert.Len(t, home.RecentPosts, 3)
	assert.Len(t, home.Featured, 3)
	// the fake CMS has no media endpoint; the hero section degrades to empty
	assert.Empty(t, home.HeroImage)
}

func TestHomeDegradesPerSection(t *testing.T) {
	svc := newHomeService(t, &fakeCMS{failAll: true})

	home := svc.Home(context.Background())
	assert.NotNil(t, home.RecentPosts)
	assert.Empty(t, home.RecentPosts)
	assert.NotNil(t, home.Featured)
	assert.Empty(t, home.Featured)
	assert.Empty(t, home.HeroImage)
}
