package main

import (
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	got := renderPage(htmlPage, "play.example.com", "2022")
	if !strings.Contains(got, "ssh -t play.example.com -p 2022") {
		t.Error("connect command not filled in")
	}
	if strings.Contains(got, "{{") {
		t.Error("unreplaced placeholder left in page")
	}
}
