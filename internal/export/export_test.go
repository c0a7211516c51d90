// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Moham3dabdalla/ai-tui/internal/model"
)

func sampleConversation() *model.Conversation {
	conv := model.NewConversation("gemini-2.0-flash")
	conv.Append(model.NewUserMessage("How do I reverse a string in Go?"))
	conv.Append(model.NewCodeMessage(model.RoleAI, "func reverse(s string) string { return s }", "go"))
	return conv
}

func TestMarkdown_WritesFile(t *testing.T) {
	dir := t.TempDir()
	conv := sampleConversation()

	path, err := Markdown(conv, dir)
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if filepath.Dir(path) != filepath.Join(dir, ExportsDir) {
		t.Errorf("export landed in %s, want %s", filepath.Dir(path), filepath.Join(dir, ExportsDir))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "# "+conv.Title) {
		t.Errorf("export missing title header:\n%s", content)
	}
	if !strings.Contains(content, "## You") {
		t.Errorf("export missing user section:\n%s", content)
	}
	if !strings.Contains(content, "```go") {
		t.Errorf("export missing fenced code block:\n%s", content)
	}
}

func TestMarkdown_ImageNotInlined(t *testing.T) {
	dir := t.TempDir()
	conv := model.NewConversation("gemini-2.0-flash")
	conv.Append(model.NewUserMessage("here is a picture"))
	conv.Append(model.NewImageMessage(model.RoleUser, "data:image/png;base64,aGVsbG8="))

	path, err := Markdown(conv, dir)
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	data, _ := os.ReadFile(path)

	if strings.Contains(string(data), "base64") {
		t.Error("export must not inline image data URLs")
	}
	if !strings.Contains(string(data), "[image attachment]") {
		t.Error("export missing image attachment note")
	}
}

func TestJSON_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	conv := sampleConversation()

	path, err := JSON(conv, dir)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	var got model.Conversation
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if got.ID != conv.ID {
		t.Errorf("ID = %q, want %q", got.ID, conv.ID)
	}
	if len(got.Messages) != len(conv.Messages) {
		t.Errorf("message count = %d, want %d", len(got.Messages), len(conv.Messages))
	}
}

func TestExport_EmptyConversation(t *testing.T) {
	dir := t.TempDir()
	conv := model.NewConversation("gemini-2.0-flash")

	if _, err := Markdown(conv, dir); err == nil {
		t.Error("Markdown() should reject an empty conversation")
	}
	if _, err := JSON(conv, dir); err == nil {
		t.Error("JSON() should reject an empty conversation")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello_world"},
		{"special chars stripped", "what? is *this*!", "what_is_this"},
		{"empty becomes untitled", "///", "untitled"},
		{"long input capped", strings.Repeat("a", 100), strings.Repeat("a", 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.in); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestImageDataURL_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	raw := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	src := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(src, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	dataURL, err := ReadImageDataURL(src)
	if err != nil {
		t.Fatalf("ReadImageDataURL() error = %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/png;base64,") {
		t.Fatalf("unexpected data URL prefix: %q", dataURL[:30])
	}

	path, err := SaveImage(dataURL, dir)
	if err != nil {
		t.Fatalf("SaveImage() error = %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("saved extension = %q, want .png", filepath.Ext(path))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(raw) {
		t.Error("saved image bytes differ from source")
	}
}

func TestReadImageDataURL_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(src, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadImageDataURL(src); err == nil {
		t.Error("ReadImageDataURL() should reject non-image files")
	}
}

func TestSaveImage_Malformed(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		in   string
	}{
		{"not a data url", "http://example.com/a.png"},
		{"no comma", "data:image/png;base64"},
		{"not base64 marked", "data:image/png,rawbytes"},
		{"bad payload", "data:image/png;base64,!!!not-base64!!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SaveImage(tt.in, dir); err == nil {
				t.Errorf("SaveImage(%q) should fail", tt.in)
			}
		})
	}
}

func TestSaveImage_UnknownMimeFallsBack(t *testing.T) {
	dir := t.TempDir()
	payload := base64.StdEncoding.EncodeToString([]byte("blob"))

	path, err := SaveImage("data:application/octet-stream;base64,"+payload, dir)
	if err != nil {
		t.Fatalf("SaveImage() error = %v", err)
	}
	if filepath.Ext(path) != ".bin" {
		t.Errorf("extension = %q, want .bin", filepath.Ext(path))
	}
}
