package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Not safe for concurrent use; the program runs on a single goroutine.
var lowerCaser = cases.Lower(language.Und)

// FilterKey is the form of a line or denylist entry used for membership tests.
func FilterKey(s string) string {
	return lowerCaser.String(strings.TrimSpace(s))
}

func FetchDenylist(client *http.Client, url string) (mapset.Set[string], error) {

	log.Println("Fetching denylist")

	text, err := ApiText(client, url)
	if err != nil {
		return nil, fmt.Errorf("fetching denylist: %w", err)
	}

	denylist := ParseDenylist(text)

	log.Printf("Loaded %d denylisted words", denylist.Cardinality())

	return denylist, nil
}

// ParseDenylist splits text on newlines. Entries are normalized the same way
// lines are, and blank entries are dropped so empty lines never match.
func ParseDenylist(text string) mapset.Set[string] {

	denylist := mapset.NewThreadUnsafeSet[string]()
	for _, entry := range strings.Split(text, "\n") {
		key := FilterKey(entry)
		if key == "" {
			continue
		}
		denylist.Add(key)
	}

	return denylist
}
