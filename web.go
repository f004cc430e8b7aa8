package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
)

func NewClient(config *Config) *http.Client {
	return &http.Client{Timeout: config.Timeout}
}

func Api(client *http.Client, url string) (*http.Response, error) {
	log.Printf("Web request to: %s", url)
	return client.Get(url)
}

func ApiText(client *http.Client, url string) (string, error) {

	resp, err := Api(client, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status from %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body of %s: %w", url, err)
	}

	return string(body), nil
}
