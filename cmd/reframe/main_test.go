package main

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"reframe"}, args...))
	return out.String(), err
}

func TestPackCommand(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "cat.png"), 200, 100)
	writePNG(t, filepath.Join(dir, "dog.png"), 100, 200)
	output := filepath.Join(dir, "out.zip")
	summary := filepath.Join(dir, "summary.md")

	_, err := runApp(t, "pack", "-Q",
		"-o", output,
		"-l", "feed", "-l", "stories",
		"-f", "blur",
		"-q", "80",
		"--summary", summary,
		filepath.Join(dir, "cat.png"), filepath.Join(dir, "dog.png"))
	if err != nil {
		t.Fatalf("pack failed: %v", err)
	}

	r, err := zip.OpenReader(output)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	want := []string{"cat/Feed.jpg", "cat/Stories.jpg", "dog/Feed.jpg", "dog/Stories.jpg"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("entries = %v, want %v", names, want)
	}

	md, err := os.ReadFile(summary)
	if err != nil {
		t.Fatalf("summary not written: %v", err)
	}
	if !strings.Contains(string(md), "cat/Feed.jpg") {
		t.Errorf("summary missing entry table:\n%s", md)
	}
}

func TestPackCommand_Directory(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	if err := os.Mkdir(in, 0755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(in, "a.png"), 50, 50)
	writePNG(t, filepath.Join(in, "b.png"), 60, 30)
	if err := os.WriteFile(filepath.Join(in, "notes.txt"), []byte("skip"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.zip")

	if _, err := runApp(t, "pack", "-Q", "-o", output, "-l", "feed", in); err != nil {
		t.Fatalf("pack failed: %v", err)
	}

	r, err := zip.OpenReader(output)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer r.Close()
	if len(r.File) != 2 {
		t.Errorf("entries = %d, want 2", len(r.File))
	}
}

func TestPackCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "cat.png"), 40, 20)
	output := filepath.Join(dir, "out.zip")
	cfgPath := filepath.Join(dir, "reframe.yaml")
	cfg := "output: " + output + "\nlayouts:\n  - stories\nfill: solid\ncolor: \"#000000\"\nquality: 70\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := runApp(t, "pack", "-Q", "-c", cfgPath, filepath.Join(dir, "cat.png")); err != nil {
		t.Fatalf("pack failed: %v", err)
	}

	r, err := zip.OpenReader(output)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer r.Close()
	if len(r.File) != 1 || r.File[0].Name != "cat/Stories.jpg" {
		t.Errorf("unexpected entries: %d", len(r.File))
	}
}

func TestPackCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "cat.png"), 40, 20)
	output := filepath.Join(dir, "out.zip")

	tests := []struct {
		name string
		args []string
	}{
		{"no inputs", []string{"pack", "-Q", "-o", output}},
		{"no output", []string{"pack", "-Q", filepath.Join(dir, "cat.png")}},
		{"unknown layout", []string{"pack", "-Q", "-o", output, "-l", "billboard", filepath.Join(dir, "cat.png")}},
		{"bad fill", []string{"pack", "-Q", "-o", output, "-f", "mosaic", filepath.Join(dir, "cat.png")}},
		{"bad color", []string{"pack", "-Q", "-o", output, "--color", "#zzz", filepath.Join(dir, "cat.png")}},
		{"bad quality", []string{"pack", "-Q", "-o", output, "-q", "0", filepath.Join(dir, "cat.png")}},
		{"missing file", []string{"pack", "-Q", "-o", output, filepath.Join(dir, "missing.png")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("no archive should be written on failure")
	}
}

func TestLayoutsCommand(t *testing.T) {
	out, err := runApp(t, "layouts")
	if err != nil {
		t.Fatalf("layouts failed: %v", err)
	}
	for _, want := range []string{"Feed (1:1)", "Stories", "1080x1920"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
