package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterKey(t *testing.T) {
	assert.Equal(t, "badword", FilterKey("  BadWord \r\n"))
	assert.Equal(t, "two words", FilterKey("\tTwo Words"))
	assert.Equal(t, "", FilterKey(" \n"))
}

func TestParseDenylist(t *testing.T) {
	denylist := ParseDenylist("badword\r\n  Shout \n\n\nbadword\nlast")

	assert.Equal(t, 3, denylist.Cardinality())
	assert.True(t, denylist.Contains("badword", "shout", "last"))
	assert.False(t, denylist.Contains(""))
}

func TestParseDenylistEmpty(t *testing.T) {
	assert.Equal(t, 0, ParseDenylist("").Cardinality())
}

func TestFetchDenylist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("badword\nworse\n"))
	}))
	defer server.Close()

	denylist, err := FetchDenylist(server.Client(), server.URL)
	require.NoError(t, err)
	assert.True(t, denylist.Contains("badword", "worse"))
	assert.Equal(t, 2, denylist.Cardinality())
}

func TestFetchDenylistServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	denylist, err := FetchDenylist(server.Client(), server.URL)
	assert.Error(t, err)
	assert.Nil(t, denylist)
}

func TestFilterKeyReusesCaser(t *testing.T) {
	inputs := []string{"ÉCOLE", " BadWord ", "İstanbul", "MiXeD\r\n", "ÉCOLE"}
	first := make([]string, len(inputs))
	for i, in := range inputs {
		first[i] = FilterKey(in)
	}

	for i, in := range inputs {
		assert.Equal(t, first[i], FilterKey(in))
	}
	assert.Equal(t, "école", first[0])
	assert.Equal(t, "badword", first[1])
	assert.Equal(t, "mixed", first[3])
}
