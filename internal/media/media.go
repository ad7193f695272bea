// Package media lists the video and image files of a dataset directory and
// names the per-frame files derived from them.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// VideoExtensions are matched case-sensitively, in both spellings.
var VideoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".mpg", ".MP4", ".AVI", ".MOV", ".MKV", ".MPG"}

// ImageExtensions are matched after lower-casing the file extension.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Stem returns the file name without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ListVideos returns the stems of the video files in dir, sorted by name.
func ListVideos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !contains(VideoExtensions, filepath.Ext(e.Name())) {
			continue
		}
		names = append(names, Stem(e.Name()))
	}
	return names, nil
}

// ListImages returns the paths of the image files in dir, sorted by name.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !contains(ImageExtensions, strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// FrameName returns "{stem}_frame_{NNNN}{ext}", the name used for both
// extracted frame images and their label files.
func FrameName(stem string, frame int, ext string) string {
	return fmt.Sprintf("%s_frame_%04d%s", stem, frame, ext)
}

// FrameLabelName returns the label file name of one frame.
func FrameLabelName(stem string, frame int) string {
	return FrameName(stem, frame, ".txt")
}
