package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/summary-flow/internal/failure"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"valid youtube url", YouTubeURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ"), false},
		{"valid short url", YouTubeURL("https://youtu.be/abc"), false},
		{"url with surrounding spaces", YouTubeURL("  https://youtu.be/abc  "), false},
		{"blank url", YouTubeURL("   "), true},
		{"not a url", YouTubeURL("not-a-url"), true},
		{"ftp scheme", YouTubeURL("ftp://example.com/file"), true},
		{"missing host", YouTubeURL("https:///watch"), true},
		{"document", Document([]byte("%PDF-1.4"), "a.pdf"), false},
		{"empty document", Document(nil, "a.pdf"), true},
		{"text", Text("The quick brown fox"), false},
		{"empty text", Text(""), true},
		{"whitespace text", Text(" \n\t "), true},
		{"zero spec", Spec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && failure.ReasonOf(err) != failure.EmptyInput {
				t.Errorf("reason = %v, want %v", failure.ReasonOf(err), failure.EmptyInput)
			}
		})
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch with params", "https://youtube.com/watch?v=dQw4w9WgXcQ&t=123", "dQw4w9WgXcQ", false},
		{"mobile", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short link with query", "https://youtu.be/abc?si=xyz", "abc", false},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"live", "https://www.youtube.com/live/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch without id", "https://www.youtube.com/watch", "", true},
		{"other host", "https://example.com/watch?v=dQw4w9WgXcQ", "", true},
		{"bad characters", "https://youtu.be/abc$def", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VideoID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VideoID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("VideoID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	spec, err := FromFile(write("notes.txt", "hello world"))
	if err != nil {
		t.Fatalf("FromFile(txt) error = %v", err)
	}
	if spec.Kind() != KindText || spec.Text() != "hello world" {
		t.Errorf("txt spec = %v %q", spec.Kind(), spec.Text())
	}

	spec, err = FromFile(write("video.url", "\n  https://youtu.be/abc \nignored\n"))
	if err != nil {
		t.Fatalf("FromFile(url) error = %v", err)
	}
	if spec.Kind() != KindYouTubeURL || spec.URL() != "https://youtu.be/abc" {
		t.Errorf("url spec = %v %q", spec.Kind(), spec.URL())
	}

	spec, err = FromFile(write("paper.PDF", "%PDF-1.4"))
	if err != nil {
		t.Fatalf("FromFile(pdf) error = %v", err)
	}
	if spec.Kind() != KindDocument || spec.Filename() != "paper.PDF" {
		t.Errorf("pdf spec = %v %q", spec.Kind(), spec.Filename())
	}

	if _, err := FromFile(write("movie.mp4", "x")); err == nil {
		t.Error("FromFile(mp4) should fail")
	}
	if _, err := FromFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("FromFile(missing) should fail")
	}
}

func TestIsSupportedFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.pdf", true},
		{"a.TXT", true},
		{"a.md", true},
		{"a.url", true},
		{"a.mp4", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsSupportedFile(tt.path); got != tt.want {
			t.Errorf("IsSupportedFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
